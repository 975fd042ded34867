package signup

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToggleSetMember(t *testing.T) {
	t.Parallel()

	sentinel := ToggleOptions{Sentinel: SentinelEverything}
	capped := ToggleOptions{MaxSize: 3}

	tests := []struct {
		name string
		set  []string
		id   string
		opts ToggleOptions
		want []string
	}{
		{"insert", nil, "keto", ToggleOptions{}, []string{"keto"}},
		{"remove", []string{"keto", "fiber"}, "keto", ToggleOptions{}, []string{"fiber"}},
		{"cap reached", []string{"health", "weight", "muscle"}, "energy", capped, []string{"health", "weight", "muscle"}},
		{"remove at cap", []string{"health", "weight", "muscle"}, "weight", capped, []string{"health", "muscle"}},
		{"sentinel replaces others", []string{"keto", "fiber"}, SentinelEverything, sentinel, []string{SentinelEverything}},
		{"other replaces sentinel", []string{SentinelEverything}, "keto", sentinel, []string{"keto"}},
		{"last removal restores sentinel", []string{"keto"}, "keto", sentinel, []string{SentinelEverything}},
		{"sentinel toggle is idempotent", []string{SentinelEverything}, SentinelEverything, sentinel, []string{SentinelEverything}},
		{"empty set without sentinel", []string{"keto"}, "keto", ToggleOptions{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ToggleSetMember(tt.set, tt.id, tt.opts))
		})
	}
}

func TestToggleSetMember_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	set := []string{"keto", "fiber"}
	_ = ToggleSetMember(set, "keto", ToggleOptions{})
	require.Equal(t, []string{"keto", "fiber"}, set)

	full := []string{"a", "b"}
	out := ToggleSetMember(full, "c", ToggleOptions{MaxSize: 2})
	out[0] = "z"
	require.Equal(t, []string{"a", "b"}, full)
}

func TestToggleSetMember_TwiceIsIdentity(t *testing.T) {
	t.Parallel()

	ids := OptionIDs(GoalOptions)
	opts := ToggleOptions{MaxSize: DefaultGoalLimit}
	rng := rand.New(rand.NewPCG(1, 2))

	set := []string{}
	for range 200 {
		id := ids[rng.IntN(len(ids))]
		twice := ToggleSetMember(ToggleSetMember(set, id, opts), id, opts)
		require.ElementsMatch(t, set, twice, "toggling %q twice on %v", id, set)

		set = ToggleSetMember(set, ids[rng.IntN(len(ids))], opts)
	}
}

func TestToggleSetMember_Invariants(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11))

	t.Run("meal preferences never empty or mixed", func(t *testing.T) {
		ids := OptionIDs(MealOptions)
		opts := ToggleOptions{Sentinel: SentinelEverything}
		set := []string{SentinelEverything}
		for range 500 {
			set = ToggleSetMember(set, ids[rng.IntN(len(ids))], opts)
			require.NotEmpty(t, set)
			if slices.Contains(set, SentinelEverything) {
				require.Equal(t, []string{SentinelEverything}, set)
			}
		}
	})

	t.Run("goals never exceed cap", func(t *testing.T) {
		ids := OptionIDs(GoalOptions)
		opts := ToggleOptions{MaxSize: DefaultGoalLimit}
		var set []string
		for range 500 {
			set = ToggleSetMember(set, ids[rng.IntN(len(ids))], opts)
			require.LessOrEqual(t, len(set), DefaultGoalLimit)
		}
	})
}
