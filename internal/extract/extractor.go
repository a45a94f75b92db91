// Package extract guesses a candidate project record from free-form
// meeting notes. The heuristics are deliberately isolated behind a narrow
// interface so they can be swapped without touching the lifecycle engine;
// candidates still pass through normal project validation on import.
package extract

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrEmptyInput indicates there was no text to analyze.
var ErrEmptyInput = errors.New("no text to analyze")

// Candidate statuses. Prospección and Venta also warrant a quotation on
// import; Oportunidad does not.
const (
	StatusOpportunity = "Oportunidad"
	StatusProspection = "Prospección"
	StatusSale        = "Venta"
)

// Defaults applied when the text yields nothing better.
const (
	DefaultAmount = 50000
	DefaultClient = "Cliente Potencial"
	SectorOther   = "Tech/Otros"
)

// Candidate is the record guessed from a block of notes. Amount is always
// non-negative and Sr is clamped to [0,1].
type Candidate struct {
	Name        string  `json:"name"`
	Client      string  `json:"client"`
	Sector      string  `json:"sector"`
	Amount      float64 `json:"amount"`
	Sr          float64 `json:"sr"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
}

// Extractor produces a candidate record from free text.
type Extractor interface {
	Extract(text string) (Candidate, error)
}

// Keywords correlated with replicable lab capabilities; each hit nudges the
// replicability score up from the 0.5 baseline.
var boostKeywords = []string{
	"ia gen", "audio", "video", "voz", "música", "lmm", "gpt", "stable diffusion",
	"automatización", "n8n", "antigravity", "zapier",
	"xr", "vr", "ar", "360", "gaussian", "splats",
	"visual coding", "touch designer", "vvvv", "cables.gl",
	"cgi", "unreal", "unity", "mocap", "blender",
	"sonido", "dolby atmos", "spatial", "ambisonics",
}

// Hardware-heavy work replicates poorly; each hit pulls the score down.
var penaltyKeywords = []string{
	"robótica", "sensores", "impresión 3d", "hardware", "electrónica", "pcb",
}

var knownSectors = []string{
	"Minería", "Retail", "Música", "Salud", "Logística", "Educación",
	"Gobierno", "Deportes", "Industrias Creativas", "Patrimonio", "Automotriz",
}

var (
	amountPattern = regexp.MustCompile(`\$?\s?(\d+([.,]\d+)*)`)
	clientPattern = regexp.MustCompile(`(?i)cliente:?\s*([A-Za-z0-9\s]+)`)
)

// Heuristic is the keyword-and-regex extractor.
type Heuristic struct{}

// NewHeuristic creates a heuristic extractor.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Extract guesses a candidate record from the given notes.
func (h *Heuristic) Extract(text string) (Candidate, error) {
	if strings.TrimSpace(text) == "" {
		return Candidate{}, ErrEmptyInput
	}

	lower := strings.ToLower(text)
	sector := detectSector(lower)

	c := Candidate{
		Name:        "Proyecto " + sector + " AI",
		Client:      detectClient(text),
		Sector:      sector,
		Amount:      detectAmount(text),
		Sr:          Replicability(text),
		Status:      detectStatus(lower),
		Description: truncate(text, 100),
	}
	return c, nil
}

// Replicability scores how replicable the described work is, starting from
// a neutral 0.5 and clamped to [0,1].
func Replicability(text string) float64 {
	lower := strings.ToLower(text)
	score := 0.5
	for _, kw := range boostKeywords {
		if strings.Contains(lower, kw) {
			score += 0.1
		}
	}
	for _, kw := range penaltyKeywords {
		if strings.Contains(lower, kw) {
			score -= 0.15
		}
	}
	return min(1, max(0, score))
}

func detectSector(lower string) string {
	for _, s := range knownSectors {
		if strings.Contains(lower, strings.ToLower(s)) {
			return s
		}
	}
	return SectorOther
}

func detectClient(text string) string {
	m := clientPattern.FindStringSubmatch(text)
	if m == nil {
		return DefaultClient
	}
	client := strings.TrimSpace(m[1])
	if client == "" {
		return DefaultClient
	}
	return client
}

// detectAmount parses the first number in the text, reading dots as
// thousands separators and a comma as the decimal mark.
func detectAmount(text string) float64 {
	m := amountPattern.FindStringSubmatch(text)
	if m == nil {
		return DefaultAmount
	}
	raw := strings.ReplaceAll(m[1], ".", "")
	raw = strings.ReplaceAll(raw, ",", ".")
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount < 0 {
		return DefaultAmount
	}
	return amount
}

func detectStatus(lower string) string {
	switch {
	case strings.Contains(lower, "cerrado"):
		return StatusSale
	case strings.Contains(lower, "propuesta"):
		return StatusProspection
	default:
		return StatusOpportunity
	}
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
