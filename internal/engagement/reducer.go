package engagement

import "board-service/internal/posts"

type Action string

const (
	ActionLike    Action = "like"
	ActionDislike Action = "dislike"
)

// State is the engagement of one viewer with one subject plus the counters
// the viewer currently sees. Liked and Disliked are mutually exclusive.
type State struct {
	Liked    bool `json:"liked"`
	Disliked bool `json:"disliked"`
	Likes    int  `json:"likes"`
	Dislikes int  `json:"dislikes"`
}

// Value is the stored reaction row value: +1 liked, -1 disliked, 0 neutral.
func (s State) Value() int {
	switch {
	case s.Liked:
		return 1
	case s.Disliked:
		return -1
	default:
		return 0
	}
}

// CounterDelta is one counter effect of a transition.
type CounterDelta struct {
	Field string
	Delta int
}

// Apply runs one transition of the reaction state machine and returns the
// next state with the counter effects:
//
//	neutral  --like-->    liked     (likes +1)
//	liked    --like-->    neutral   (likes -1)
//	neutral  --dislike--> disliked  (dislikes +1)
//	disliked --dislike--> neutral   (dislikes -1)
//	liked    --dislike--> disliked  (likes -1, dislikes +1)
//	disliked --like-->    liked     (dislikes -1, likes +1)
//
// Switching reactions is a single transition with two counter effects; it
// never passes through neutral.
func Apply(s State, a Action) (State, []CounterDelta) {
	var deltas []CounterDelta

	switch a {
	case ActionLike:
		if s.Liked {
			s.Liked = false
			s.Likes--
			deltas = append(deltas, CounterDelta{posts.FieldLikes, -1})
			break
		}
		if s.Disliked {
			s.Disliked = false
			s.Dislikes--
			deltas = append(deltas, CounterDelta{posts.FieldDislikes, -1})
		}
		s.Liked = true
		s.Likes++
		deltas = append(deltas, CounterDelta{posts.FieldLikes, 1})

	case ActionDislike:
		if s.Disliked {
			s.Disliked = false
			s.Dislikes--
			deltas = append(deltas, CounterDelta{posts.FieldDislikes, -1})
			break
		}
		if s.Liked {
			s.Liked = false
			s.Likes--
			deltas = append(deltas, CounterDelta{posts.FieldLikes, -1})
		}
		s.Disliked = true
		s.Dislikes++
		deltas = append(deltas, CounterDelta{posts.FieldDislikes, 1})
	}

	return s, deltas
}

// deltasBetween returns the counter effects of moving a stored reaction
// value from prev to next. For any transition it emits exactly what Apply
// emits, which lets the store re-derive the effects from the row it holds
// locked instead of trusting the caller's view.
func deltasBetween(prev, next int) []CounterDelta {
	if prev == next {
		return nil
	}
	var deltas []CounterDelta
	if prev == 1 {
		deltas = append(deltas, CounterDelta{posts.FieldLikes, -1})
	}
	if prev == -1 {
		deltas = append(deltas, CounterDelta{posts.FieldDislikes, -1})
	}
	if next == 1 {
		deltas = append(deltas, CounterDelta{posts.FieldLikes, 1})
	}
	if next == -1 {
		deltas = append(deltas, CounterDelta{posts.FieldDislikes, 1})
	}
	return deltas
}
