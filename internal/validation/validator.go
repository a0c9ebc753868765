package validation

import (
	"regexp"
	"strings"

	"pylearn/internal/domain"
	"pylearn/internal/dto"
	"pylearn/internal/util"
)

const (
	MaxAnswerLength  = 2000
	MaxCodeLength    = 10000
	MaxChatLength    = 2000
	MaxContextLength = 4000
	MaxHintIndex     = 20
	MaxPageLimit     = 100
)

var (
	slugPattern     = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,30}$`)
	userIDPattern   = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateLessonID checks a lesson slug such as "python-basics-1".
func (v *Validator) ValidateLessonID(id string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(id) == "" {
		errs = append(errs, domain.NewMissingFieldError("id"))
	} else if !slugPattern.MatchString(id) {
		errs = append(errs, domain.NewInvalidFormatError("id", id))
	}
	return errs
}

// ValidateULID checks ids minted by this service (friendships, notifications).
func (v *Validator) ValidateULID(field, id string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(id) == "" {
		errs = append(errs, domain.NewMissingFieldError(field))
	} else if !util.IsULID(id) {
		errs = append(errs, domain.NewInvalidFormatError(field, id))
	}
	return errs
}

// ValidateUserID accepts the auth provider's subject format (UUIDs and similar).
func (v *Validator) ValidateUserID(field, id string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(id) == "" {
		errs = append(errs, domain.NewMissingFieldError(field))
	} else if !userIDPattern.MatchString(id) {
		errs = append(errs, domain.NewInvalidFormatError(field, id))
	}
	return errs
}

// ValidateAttempt only enforces size limits. An empty answer is not an error;
// the scorer answers it with feedback.
func (v *Validator) ValidateAttempt(req *dto.ValidateLessonRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if len(req.Answer) > MaxAnswerLength {
		errs = append(errs, domain.NewOutOfRangeError("answer", len(req.Answer), 0, MaxAnswerLength))
	}
	for id, a := range req.Answers {
		if len(a) > MaxAnswerLength {
			errs = append(errs, domain.NewOutOfRangeError("answers."+id, len(a), 0, MaxAnswerLength))
		}
	}
	if len(req.Code) > MaxCodeLength {
		errs = append(errs, domain.NewOutOfRangeError("code", len(req.Code), 0, MaxCodeLength))
	}
	return errs
}

func (v *Validator) ValidateHintIndex(index int) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if index < 0 || index > MaxHintIndex {
		errs = append(errs, domain.NewOutOfRangeError("index", index, 0, MaxHintIndex))
	}
	return errs
}

func (v *Validator) ValidateCompletion(req *dto.CompleteLessonRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if req.HintsUsed < 0 {
		errs = append(errs, domain.NewOutOfRangeError("hints_used", req.HintsUsed, 0, MaxHintIndex))
	}
	if req.Attempts < 0 {
		errs = append(errs, domain.NewInvalidFormatError("attempts", req.Attempts))
	}
	if req.TimeSpentSeconds < 0 {
		errs = append(errs, domain.NewInvalidFormatError("time_spent_seconds", req.TimeSpentSeconds))
	}
	return errs
}

func (v *Validator) ValidateCreateProfile(req *dto.CreateProfileRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors
	username := strings.TrimSpace(req.Username)
	if username == "" {
		errs = append(errs, domain.NewMissingFieldError("username"))
	} else if !usernamePattern.MatchString(username) {
		errs = append(errs, domain.NewInvalidFormatError("username", req.Username))
	}
	if len(req.DisplayName) > 50 {
		errs = append(errs, domain.NewOutOfRangeError("display_name", len(req.DisplayName), 0, 50))
	}
	if req.AvatarURL != "" && !strings.HasPrefix(req.AvatarURL, "https://") && !strings.HasPrefix(req.AvatarURL, "http://") {
		errs = append(errs, domain.NewInvalidFormatError("avatar_url", req.AvatarURL))
	}
	return errs
}

func (v *Validator) ValidateChallengeSubmission(challengeID string, req *dto.CompleteChallengeRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(challengeID) == "" {
		errs = append(errs, domain.NewMissingFieldError("id"))
	}
	if strings.TrimSpace(req.Code) == "" {
		errs = append(errs, domain.NewMissingFieldError("code"))
	} else if len(req.Code) > MaxCodeLength {
		errs = append(errs, domain.NewOutOfRangeError("code", len(req.Code), 1, MaxCodeLength))
	}
	if req.HintsUsed < 0 {
		errs = append(errs, domain.NewInvalidFormatError("hints_used", req.HintsUsed))
	}
	if req.TimeSpentSeconds < 0 {
		errs = append(errs, domain.NewInvalidFormatError("time_spent_seconds", req.TimeSpentSeconds))
	}
	return errs
}

func (v *Validator) ValidateChat(req *dto.ChatRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		errs = append(errs, domain.NewMissingFieldError("message"))
	} else if len(msg) > MaxChatLength {
		errs = append(errs, domain.NewOutOfRangeError("message", len(msg), 1, MaxChatLength))
	}
	if len(req.LessonContext) > MaxContextLength {
		errs = append(errs, domain.NewOutOfRangeError("lesson_context", len(req.LessonContext), 0, MaxContextLength))
	}
	if req.Personality != "" && !domain.Personality(req.Personality).Valid() {
		errs = append(errs, domain.NewInvalidFormatError("personality", req.Personality))
	}
	if req.ConversationID != "" && !util.IsULID(req.ConversationID) {
		errs = append(errs, domain.NewInvalidFormatError("conversation_id", req.ConversationID))
	}
	return errs
}

func (v *Validator) ValidateLimit(limit int) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if limit < 0 || limit > MaxPageLimit {
		errs = append(errs, domain.NewOutOfRangeError("limit", limit, 0, MaxPageLimit))
	}
	return errs
}
