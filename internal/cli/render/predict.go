package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/ssb-deploy/internal/usecase"
)

// PredictRenderer renders address predictions
type PredictRenderer struct {
	out io.Writer
}

// NewPredictRenderer creates a new predict renderer
func NewPredictRenderer(out io.Writer) *PredictRenderer {
	return &PredictRenderer{out: out}
}

// RenderPrediction prints the predicted address and how it was derived
func (r *PredictRenderer) RenderPrediction(result *usecase.PredictAddressResult) error {
	_, err := fmt.Fprintf(r.out, "%s (chain %d, sender %s, nonce %d)\n",
		result.Address.Hex(), result.ChainID, result.Sender.Hex(), result.Nonce)
	return err
}
