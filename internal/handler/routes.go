package handler

import (
	"pylearn/internal/middleware"
	"pylearn/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every route handler of the API.
type Handlers struct {
	Lessons       *LessonHandler
	Profiles      *ProfileHandler
	Achievements  *AchievementHandler
	Leagues       *LeagueHandler
	Challenges    *ChallengeHandler
	Friends       *FriendHandler
	Notifications *NotificationHandler
	Chat          *ChatHandler
}

// RegisterRoutes mounts the API under /api.
func RegisterRoutes(app *fiber.App, authService service.AuthService, h Handlers) {
	vm := middleware.NewValidationMiddleware()
	protected := middleware.Protected(authService)

	api := app.Group("/api")
	api.Get("/health", Health)

	lessons := api.Group("/lessons")
	lessons.Get("/", h.Lessons.ListLessons)
	lessons.Get("/:id", vm.ValidateLessonParam(), h.Lessons.GetLesson)
	lessons.Post("/:id/validate", protected, vm.ValidateLessonParam(), h.Lessons.ValidateAttempt)
	lessons.Post("/:id/hints", protected, vm.ValidateLessonParam(), h.Lessons.RevealHint)
	lessons.Post("/:id/complete", protected, vm.ValidateLessonParam(), h.Lessons.CompleteLesson)

	users := api.Group("/users", protected)
	users.Get("/me", h.Profiles.GetMyProfile)
	users.Post("/me", h.Profiles.CreateMyProfile)

	achievements := api.Group("/achievements", protected)
	achievements.Get("/", h.Achievements.GetProgress)
	achievements.Get("/stats", h.Achievements.GetStats)
	achievements.Post("/check", h.Achievements.Check)

	leagues := api.Group("/leagues")
	leagues.Get("/", h.Leagues.ListLeagues)
	leagues.Get("/me", protected, h.Leagues.GetMyStanding)
	leagues.Get("/:league/leaderboard", h.Leagues.GetLeaderboard)

	challenges := api.Group("/challenges")
	challenges.Get("/daily", h.Challenges.GetDaily)
	challenges.Get("/weekly", h.Challenges.GetWeekly)
	challenges.Get("/streak-bonus", protected, h.Challenges.GetStreakBonus)
	challenges.Post("/:id/complete", protected, h.Challenges.Complete)

	friends := api.Group("/friends", protected)
	friends.Get("/", h.Friends.ListFriends)
	friends.Post("/", h.Friends.SendRequest)
	friends.Post("/:id/accept", vm.ValidateULIDParam(), h.Friends.Accept)
	friends.Delete("/:id", vm.ValidateULIDParam(), h.Friends.Remove)

	notifications := api.Group("/notifications", protected)
	notifications.Get("/", h.Notifications.List)
	notifications.Get("/stream", h.Notifications.Stream)
	notifications.Post("/:id/read", vm.ValidateULIDParam(), h.Notifications.MarkRead)

	api.Post("/chat", protected, h.Chat.Chat)
}
