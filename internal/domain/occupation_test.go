package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccupationCodeLevel(t *testing.T) {
	tests := []struct {
		name    string
		code    OccupationCode
		want    OccupationLevel
		wantErr error
	}{
		{"major group", "2", OccupationLevelMajor, nil},
		{"sub-major group", "22", OccupationLevelSubMajor, nil},
		{"minor group", "222", OccupationLevelMinor, nil},
		{"unit group", "2221", OccupationLevelUnit, nil},
		{"unit subgroup", "22210", OccupationLevelUnitSubgroup, nil},
		{"too long", "222100", "", ErrInvalidArgument},
		{"empty", "", "", ErrInvalidArgument},
		{"non-digit", "22a1", "", ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := tt.code.Level()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, level)
		})
	}
}

func TestOccupationCodeValid(t *testing.T) {
	assert.True(t, OccupationCode("2221").Valid())
	assert.False(t, OccupationCode("").Valid())
	assert.False(t, OccupationCode("abc").Valid())
}
