package asset

import (
	"fmt"

	"goldloan-backend/internal/domain/apperr"
)

// Purity is the closed set of recognized karat grades. The external code
// ("22K") and the display label ("22 Carat") are an explicit bidirectional
// table; anything unmapped fails with apperr.ErrInvalidArgument.
type Purity string

const (
	PurityEightCarat      Purity = "8K"
	PuritySixteenCarat    Purity = "16K"
	PurityEighteenCarat   Purity = "18K"
	PurityTwentyTwoCarat  Purity = "22K"
	PurityTwentyFourCarat Purity = "24K"
)

var codeToLabel = map[Purity]string{
	PurityEightCarat:      "8 Carat",
	PuritySixteenCarat:    "16 Carat",
	PurityEighteenCarat:   "18 Carat",
	PurityTwentyTwoCarat:  "22 Carat",
	PurityTwentyFourCarat: "24 Carat",
}

var labelToCode = func() map[string]Purity {
	m := make(map[string]Purity, len(codeToLabel))
	for c, l := range codeToLabel {
		m[l] = c
	}
	return m
}()

var karats = map[Purity]int{
	PurityEightCarat:      8,
	PuritySixteenCarat:    16,
	PurityEighteenCarat:   18,
	PurityTwentyTwoCarat:  22,
	PurityTwentyFourCarat: 24,
}

// ParsePurityCode maps an external code like "22K" to a Purity.
func ParsePurityCode(code string) (Purity, error) {
	p := Purity(code)
	if _, ok := codeToLabel[p]; !ok {
		return "", fmt.Errorf("invalid purity %q: %w", code, apperr.ErrInvalidArgument)
	}
	return p, nil
}

// ParsePurityLabel maps a display label like "22 Carat" back to a Purity.
func ParsePurityLabel(label string) (Purity, error) {
	p, ok := labelToCode[label]
	if !ok {
		return "", fmt.Errorf("invalid purity label %q: %w", label, apperr.ErrInvalidArgument)
	}
	return p, nil
}

// Label returns the display form, e.g. "22 Carat".
func (p Purity) Label() string { return codeToLabel[p] }

// Karat returns the numeric karat grade, e.g. 22.
func (p Purity) Karat() int { return karats[p] }

// Purities returns every recognized grade, for exhaustive tests.
func Purities() []Purity {
	return []Purity{PurityEightCarat, PuritySixteenCarat, PurityEighteenCarat, PurityTwentyTwoCarat, PurityTwentyFourCarat}
}
