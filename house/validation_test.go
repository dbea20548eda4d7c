package house

import (
	"errors"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:  "valid name",
			input: "My House",
		},
		{
			name:  "minimum length",
			input: "Lo",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrInvalidName,
		},
		{
			name:    "single character",
			input:   "X",
			wantErr: ErrInvalidName,
		},
		{
			name:    "padded single character",
			input:   "  X  ",
			wantErr: ErrInvalidName,
		},
		{
			name:  "two multibyte characters",
			input: "Łó",
		},
		{
			name:    "single multibyte character counts as one",
			input:   "李",
			wantErr: ErrInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateName(%q) = %v, want nil", tt.input, err)
				}
			} else {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ValidateName(%q) = %v, want %v", tt.input, err, tt.wantErr)
				}
			}
		})
	}
}

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:  "valid address",
			input: "123 Main St",
		},
		{
			name:  "minimum length",
			input: "1 A St",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrInvalidAddress,
		},
		{
			name:    "too short",
			input:   "42",
			wantErr: ErrInvalidAddress,
		},
		{
			name:    "whitespace does not count",
			input:   "  1a   ",
			wantErr: ErrInvalidAddress,
		},
		{
			name:  "five multibyte characters",
			input: "北京市东城",
		},
		{
			name:    "four multibyte characters count as four",
			input:   "北京市东",
			wantErr: ErrInvalidAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAddress(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateAddress(%q) = %v, want nil", tt.input, err)
				}
			} else {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ValidateAddress(%q) = %v, want %v", tt.input, err, tt.wantErr)
				}
			}
		})
	}
}

func TestValidateRoomSize(t *testing.T) {
	if err := ValidateRoomSize(0); err != nil {
		t.Errorf("ValidateRoomSize(0) = %v, want nil", err)
	}
	if err := ValidateRoomSize(24.5); err != nil {
		t.Errorf("ValidateRoomSize(24.5) = %v, want nil", err)
	}
	if err := ValidateRoomSize(-0.1); !errors.Is(err, ErrInvalidRoomSize) {
		t.Errorf("ValidateRoomSize(-0.1) = %v, want %v", err, ErrInvalidRoomSize)
	}
}

func TestParseRoomType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RoomType
		wantErr error
	}{
		{
			name:  "bedroom",
			input: "bedroom",
			want:  RoomTypeBedroom,
		},
		{
			name:  "living room",
			input: "living_room",
			want:  RoomTypeLivingRoom,
		},
		{
			name:  "empty defaults to other",
			input: "",
			want:  RoomTypeOther,
		},
		{
			name:    "unknown type",
			input:   "garage",
			wantErr: ErrInvalidRoomType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRoomType(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseRoomType(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRoomType(%q) error = %v, want nil", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRoomType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateID(t *testing.T) {
	if err := ValidateID("abc", "house"); err != nil {
		t.Errorf("ValidateID(abc) = %v, want nil", err)
	}
	err := ValidateID("", "floor")
	if !errors.Is(err, ErrInvalidID) {
		t.Fatalf("ValidateID(\"\") = %v, want %v", err, ErrInvalidID)
	}
}
