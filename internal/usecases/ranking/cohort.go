package ranking

import (
	"context"
	_ "embed"
	"fmt"
	"math"
	"os"

	"github.com/vfg2006/bill-insights-api/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:generate mockgen -source=cohort.go -destination=mocks/mock_cohort.go -package=mocks

// ExpectedYieldPerKW é a geração mensal esperada por kW instalado (kWh)
const ExpectedYieldPerKW = 150.0

//go:embed cohort.yaml
var defaultCohort []byte

// CohortProvider fornece o grupo de referência da comparação
type CohortProvider interface {
	ListCohort(ctx context.Context, query domain.CohortQuery) ([]domain.RankingEntry, error)
}

type fixtureHome struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	SystemSizeKW float64 `yaml:"system_size_kw"`
	Location     string  `yaml:"location"`
	Factor       float64 `yaml:"factor"`
}

type fixtureFile struct {
	Homes []fixtureHome `yaml:"homes"`
}

// FixtureCohort é um grupo de referência fixo, sem aleatoriedade
type FixtureCohort struct {
	entries []domain.RankingEntry
}

// NewFixtureCohort carrega o grupo do arquivo YAML informado ou, sem caminho, do grupo embutido
func NewFixtureCohort(path string) (*FixtureCohort, error) {
	data := defaultCohort
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler o arquivo do grupo de referência: %w", err)
		}
		data = content
	}

	return ParseFixtureCohort(data)
}

func ParseFixtureCohort(data []byte) (*FixtureCohort, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("erro ao decodificar o grupo de referência: %w", err)
	}

	entries := make([]domain.RankingEntry, 0, len(file.Homes))
	for i, home := range file.Homes {
		if home.SystemSizeKW <= 0 {
			return nil, fmt.Errorf("integrante %d do grupo de referência sem potência instalada", i)
		}
		if home.Factor < 0 {
			return nil, fmt.Errorf("integrante %d do grupo de referência com fator negativo", i)
		}

		id := home.ID
		if id == "" {
			id = fmt.Sprintf("home-%d", i)
		}

		expected := math.Round(home.SystemSizeKW * ExpectedYieldPerKW)
		entries = append(entries, domain.RankingEntry{
			ID:                 id,
			Name:               home.Name,
			ActualGeneration:   math.Round(expected * home.Factor),
			ExpectedGeneration: expected,
			SystemSizeKW:       home.SystemSizeKW,
			Location:           home.Location,
		})
	}

	return &FixtureCohort{entries: entries}, nil
}

// ListCohort devolve uma cópia do grupo fixo, sem a conta excluída
func (f *FixtureCohort) ListCohort(_ context.Context, query domain.CohortQuery) ([]domain.RankingEntry, error) {
	entries := make([]domain.RankingEntry, 0, len(f.entries))
	for _, entry := range f.entries {
		if query.ExcludeAccountID != "" && entry.ID == query.ExcludeAccountID {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
