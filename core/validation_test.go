package core

import (
	"errors"
	"testing"
)

func TestValidateDish(t *testing.T) {
	tests := []struct {
		name    string
		dish    *Dish
		wantErr error
	}{
		{
			name:    "valid dish",
			dish:    &Dish{Name: "Khao Soi", TierDiscovered: 1},
			wantErr: nil,
		},
		{
			name:    "valid dish before discovery tier is set",
			dish:    &Dish{Name: "Larb"},
			wantErr: nil,
		},
		{
			name:    "nil dish",
			dish:    nil,
			wantErr: ErrInvalidDish,
		},
		{
			name:    "empty name",
			dish:    &Dish{Name: ""},
			wantErr: ErrEmptyDishName,
		},
		{
			name:    "whitespace-only name",
			dish:    &Dish{Name: "   "},
			wantErr: ErrEmptyDishName,
		},
		{
			name:    "negative tier",
			dish:    &Dish{Name: "Som Tam", TierDiscovered: -1},
			wantErr: ErrInvalidTier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDish(tt.dish)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDish() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDish() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidDish) {
				t.Errorf("ValidateDish() error should wrap ErrInvalidDish, got %v", err)
			}
		})
	}
}
