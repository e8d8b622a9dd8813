package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	u, err := CreateUser("  Demo@ElaraGo.com ", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "demo@elarago.com", u.Email)
	assert.Equal(t, PlanFree, u.Plan)
	assert.NotEqual(t, "secret123", u.Password)
	assert.True(t, u.CheckPassword("secret123"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestCreateUserValidation(t *testing.T) {
	if _, err := CreateUser("not-an-email", "secret123"); err == nil {
		t.Fatalf("expected invalid email to fail validation")
	}
	if _, err := CreateUser("demo@elarago.com", "short"); err == nil {
		t.Fatalf("expected short password to fail validation")
	}
}

func TestUserIsPro(t *testing.T) {
	u := &User{Plan: PlanFree}
	assert.False(t, u.IsPro())

	u.Plan = PlanPro6Mo
	assert.True(t, u.IsPro())
}

func TestHabitDayTotal(t *testing.T) {
	h := &Habit{Mon: 1, Tue: 1, Thu: 1, Sun: 1}
	assert.Equal(t, 4, h.DayTotal())

	assert.Equal(t, 0, (&Habit{}).DayTotal())
}

func TestClampProgress(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: -5, want: 0},
		{in: 0, want: 0},
		{in: 42, want: 42},
		{in: 100, want: 100},
		{in: 180, want: 100},
	}

	for _, tt := range tests {
		if got := ClampProgress(tt.in); got != tt.want {
			t.Fatalf("ClampProgress(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestGoalInProgress(t *testing.T) {
	assert.False(t, (&Goal{Progress: 0}).InProgress())
	assert.True(t, (&Goal{Progress: 60}).InProgress())
	assert.False(t, (&Goal{Progress: 100}).InProgress())
}
