package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinels_AreDistinct(t *testing.T) {
	all := []error{
		ErrorNotFound, ErrorInternal, ErrDuplicateAccount, ErrInvalidCredentials,
		ErrProfileNotFound, ErrInvalidToken, ErrStorageNotConfigured,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v must not match %v", a, b)
			}
		}
	}
}

func TestSentinels_SurviveWrapping(t *testing.T) {
	err := fmt.Errorf("register: %w", ErrDuplicateAccount)
	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestTokenExpired_IsInvalidToken(t *testing.T) {
	assert.ErrorIs(t, ErrTokenExpired, ErrInvalidToken)
	assert.NotErrorIs(t, ErrInvalidToken, ErrTokenExpired)
}
