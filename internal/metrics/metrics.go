package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "board_posts_created_total",
		Help: "Posts accepted by the store.",
	})

	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "board_comments_created_total",
		Help: "Comments accepted by the store.",
	})

	ReactionsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "board_reactions_applied_total",
		Help: "Committed engagement transitions by action.",
	}, []string{"action"})

	ReactionRollbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "board_reaction_rollbacks_total",
		Help: "Optimistic engagement updates rolled back after a failed write.",
	})

	ModerationRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "board_moderation_rejected_total",
		Help: "Uploads flagged by the moderation gate.",
	})
)
