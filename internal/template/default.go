package template

// DefaultTemplate is the embedded order summary template.
// It uses {{variable}} placeholders for draft values.
const DefaultTemplate = `# Your {{plan}} plan

**{{meals_per_week}} meals a week** ({{daily_meals}}, {{frequency}}){{addons}}

| | |
|---|---|
| Meals | {{meals_total}} |
| Add-ons | {{addons_total}} |
| **Weekly total** | **{{weekly_total}}** |

## Preferences
- Goals: {{goals}}
- Meals: {{meals}}
- Allergies: {{allergies}}
- Avoiding: {{proteins}}

## Delivery
{{name}}
{{address}}

First delivery **{{delivery_date}}**
{{instructions}}

## Contact & payment
- Email: {{email}}
- Payment: {{payment}}
{{reference}}`
