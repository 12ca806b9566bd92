package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskAccountNumber(t *testing.T) {
	assert.Equal(t, "******7890", MaskAccountNumber("1234567890"))
	assert.Equal(t, "*5678", MaskAccountNumber("45678"))
	assert.Equal(t, "1234", MaskAccountNumber("1234"))
	assert.Equal(t, "12", MaskAccountNumber("12"))
	assert.Equal(t, "", MaskAccountNumber(""))
	assert.Equal(t, "******7890", MaskAccountNumber("  1234567890  "))
}

func TestIsValidAccountType(t *testing.T) {
	assert.True(t, IsValidAccountType(AccountTypeChecking))
	assert.True(t, IsValidAccountType(AccountTypeSavings))
	assert.True(t, IsValidAccountType(AccountTypeCredit))
	assert.False(t, IsValidAccountType("crypto"))
	assert.False(t, IsValidAccountType(""))
}

func TestIsValidType(t *testing.T) {
	assert.True(t, IsValidType(TypeIncome))
	assert.True(t, IsValidType(TypeExpense))
	assert.False(t, IsValidType("transfer"))
}

func TestIsValidFrequency(t *testing.T) {
	for _, f := range GetFrequencies() {
		assert.True(t, IsValidFrequency(f))
	}
	assert.False(t, IsValidFrequency("daily"))
}

func TestBudgetIsOverall(t *testing.T) {
	assert.True(t, Budget{Category: ""}.IsOverall())
	assert.False(t, Budget{Category: "Food"}.IsOverall())
	// Uncategorized 是具体类别，不是总预算
	assert.False(t, Budget{Category: DefaultCategory}.IsOverall())
}
