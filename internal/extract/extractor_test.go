package extract_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crtic/ptc-manager/internal/extract"
)

func TestHeuristic_Extract_EmptyInput(t *testing.T) {
	h := extract.NewHeuristic()

	_, err := h.Extract("")
	require.ErrorIs(t, err, extract.ErrEmptyInput)

	_, err = h.Extract("   \n\t ")
	require.ErrorIs(t, err, extract.ErrEmptyInput)
}

func TestHeuristic_Extract_Defaults(t *testing.T) {
	h := extract.NewHeuristic()

	c, err := h.Extract("reunión sin detalles concretos")
	require.NoError(t, err)
	require.Equal(t, extract.DefaultClient, c.Client)
	require.Equal(t, extract.SectorOther, c.Sector)
	require.Equal(t, float64(extract.DefaultAmount), c.Amount)
	require.Equal(t, extract.StatusOpportunity, c.Status)
	require.Equal(t, 0.5, c.Sr)
}

func TestHeuristic_Extract_FullNote(t *testing.T) {
	h := extract.NewHeuristic()

	c, err := h.Extract("Cliente: Minera Norte. Propuesta de retail con automatización por $1.500.000")
	require.NoError(t, err)
	require.Equal(t, "Retail", c.Sector)
	require.Equal(t, "Proyecto Retail AI", c.Name)
	require.Equal(t, extract.StatusProspection, c.Status)
	require.Contains(t, c.Client, "Minera Norte")
}

func TestHeuristic_Extract_AmountParsing(t *testing.T) {
	h := extract.NewHeuristic()

	// Dots are thousands separators, a comma is the decimal mark.
	c, err := h.Extract("presupuesto estimado 2.500.000 pesos")
	require.NoError(t, err)
	require.Equal(t, 2500000.0, c.Amount)

	c, err = h.Extract("monto 1500,75")
	require.NoError(t, err)
	require.Equal(t, 1500.75, c.Amount)
}

func TestHeuristic_Extract_StatusDetection(t *testing.T) {
	h := extract.NewHeuristic()

	c, err := h.Extract("trato cerrado con el cliente")
	require.NoError(t, err)
	require.Equal(t, extract.StatusSale, c.Status)

	c, err = h.Extract("enviamos una propuesta la semana pasada")
	require.NoError(t, err)
	require.Equal(t, extract.StatusProspection, c.Status)

	c, err = h.Extract("conversación inicial")
	require.NoError(t, err)
	require.Equal(t, extract.StatusOpportunity, c.Status)
}

func TestHeuristic_Extract_TruncatesDescription(t *testing.T) {
	h := extract.NewHeuristic()

	long := strings.Repeat("ñ", 150)
	c, err := h.Extract(long)
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("ñ", 100)+"...", c.Description)

	short := "nota corta"
	c, err = h.Extract(short)
	require.NoError(t, err)
	require.Equal(t, short, c.Description)
}

func TestReplicability(t *testing.T) {
	require.Equal(t, 0.5, extract.Replicability("texto neutro"))

	// Boost keywords raise the score.
	require.InDelta(t, 0.7, extract.Replicability("proyecto con audio y video"), 1e-9)

	// Hardware keywords lower it.
	require.InDelta(t, 0.35, extract.Replicability("instalación de sensores"), 1e-9)

	// The score clamps to [0,1].
	boosted := "ia gen audio video voz música gpt automatización xr vr"
	require.Equal(t, 1.0, extract.Replicability(boosted))

	penalized := "robótica sensores impresión 3d hardware electrónica pcb"
	require.Equal(t, 0.0, extract.Replicability(penalized))
}
