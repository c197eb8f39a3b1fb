package order

import (
	"fmt"
	"strings"

	"workload/internal/pkg/errs"
)

// StoppageReason explains why production of an order is halted.
// NoStoppage (the zero value) means the order is not stopped.
type StoppageReason int

const (
	NoStoppage StoppageReason = iota
	SizeLabel
	Composition
	ProductCode
	MissingPiece
	Bags
	MissingEverything
	StoppageOK
	TechSheet
	Bias
)

func getStoppageLabels() map[StoppageReason]string {
	//nolint:exhaustive // NoStoppage has no label
	return map[StoppageReason]string{
		SizeLabel:         "MARQUILLA TALLA",
		Composition:       "COMPOSICION",
		ProductCode:       "CODIGO",
		MissingPiece:      "FALTANTE DE PIEZA",
		Bags:              "BOLSAS",
		MissingEverything: "FALTA TODO",
		StoppageOK:        "OK",
		TechSheet:         "FICHA",
		Bias:              "SESGO",
	}
}

// ParseStoppageReason matches a label case-insensitively after trimming.
// An empty label yields NoStoppage.
func ParseStoppageReason(label string) (StoppageReason, error) {
	norm := strings.TrimSpace(label)
	if norm == "" {
		return NoStoppage, nil
	}

	for reason, l := range getStoppageLabels() {
		if strings.EqualFold(l, norm) {
			return reason, nil
		}
	}

	return NoStoppage, errs.NewValueIsInvalidErrorWithCause(
		"stoppageReason",
		fmt.Errorf("%q is not a valid stoppage reason", label),
	)
}

func (r StoppageReason) Validate() error {
	if r == NoStoppage {
		return nil
	}
	if _, ok := getStoppageLabels()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stoppageReason", fmt.Errorf("%d is not a valid stoppage reason", r))
	}
	return nil
}

// String returns the label, or "" for NoStoppage.
func (r StoppageReason) String() string {
	return getStoppageLabels()[r]
}
