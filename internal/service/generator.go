package service

import (
	"errors"
	"strings"

	"github.com/vaultpass/passgen/internal/charset"
	"github.com/vaultpass/passgen/internal/model"
)

var (
	ErrNoCharacterTypes = errors.New("at least one character type must be selected")
	ErrLengthTooLong    = errors.New("password length exceeds the maximum")
)

// IndexPicker chooses an index in [0,n).
type IndexPicker interface {
	Pick(n int) int
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	picker    IndexPicker
	maxLength int
}

// NewGeneratorService creates a new GeneratorService. A non-positive
// maxLength leaves the length unbounded.
func NewGeneratorService(picker IndexPicker, maxLength int) *GeneratorService {
	if maxLength < 0 {
		maxLength = 0
	}
	return &GeneratorService{picker: picker, maxLength: maxLength}
}

// MaxLength reports the longest password the service will build, or 0 when
// there is no limit.
func (s *GeneratorService) MaxLength() int {
	return s.maxLength
}

// Generate samples req.Length characters, with replacement, from the pool of
// the selected classes. A non-positive length yields an empty password.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	pool := charset.Pool(req.Classes()...)
	if len(pool) == 0 {
		return model.GenerateResponse{}, ErrNoCharacterTypes
	}
	if s.maxLength > 0 && req.Length > s.maxLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	var sb strings.Builder
	if req.Length > 0 {
		sb.Grow(req.Length)
	}
	for i := 0; i < req.Length; i++ {
		sb.WriteString(pool[s.picker.Pick(len(pool))])
	}

	return model.GenerateResponse{
		Password: sb.String(),
		Length:   sb.Len(),
	}, nil
}
