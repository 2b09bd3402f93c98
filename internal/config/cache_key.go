package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// UserLoginKey returns the token-registry key for a signed-in user.
func (r *CacheKeyStruct) UserLoginKey(userID int) string {
	return fmt.Sprintf("login:user:%d", userID)
}

// AdminLoginKey returns the token-registry key for a signed-in admin.
func (r *CacheKeyStruct) AdminLoginKey(adminID int) string {
	return fmt.Sprintf("login:admin:%d", adminID)
}

// SessionQuestionsKey returns the key holding a session's ordered question-id list.
func (r *CacheKeyStruct) SessionQuestionsKey(sessionID string) string {
	return fmt.Sprintf("session:%s:questions", sessionID)
}

// SessionAnswersKey returns the key of the live answer hash (question id -> option).
func (r *CacheKeyStruct) SessionAnswersKey(sessionID string) string {
	return fmt.Sprintf("session:%s:answers", sessionID)
}

// SessionFlagsKey returns the key of the flagged-for-review question set.
func (r *CacheKeyStruct) SessionFlagsKey(sessionID string) string {
	return fmt.Sprintf("session:%s:flags", sessionID)
}

// SessionHintsKey returns the key of the hint-viewed question set.
func (r *CacheKeyStruct) SessionHintsKey(sessionID string) string {
	return fmt.Sprintf("session:%s:hints", sessionID)
}

// SessionSolutionsKey returns the key of the solution-viewed question set.
func (r *CacheKeyStruct) SessionSolutionsKey(sessionID string) string {
	return fmt.Sprintf("session:%s:solutions", sessionID)
}

// GuestAnsweredKey returns the key of the set of questions a guest has ever answered.
func (r *CacheKeyStruct) GuestAnsweredKey(guestID string) string {
	return fmt.Sprintf("guest:%s:answered", guestID)
}

// GuestCountKey returns the key of a guest's free-trial answer counter.
func (r *CacheKeyStruct) GuestCountKey(guestID string) string {
	return fmt.Sprintf("guest:%s:count", guestID)
}

// CacheKey is the shared cache key builder.
var CacheKey = NewCacheKeyStruct()
