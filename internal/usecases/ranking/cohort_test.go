package ranking

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bill-insights-api/internal/domain"
)

func TestFixtureCohort_Padrao(t *testing.T) {
	cohort, err := NewFixtureCohort("")
	require.NoError(t, err)

	first, err := cohort.ListCohort(context.Background(), domain.CohortQuery{})
	require.NoError(t, err)
	second, err := cohort.ListCohort(context.Background(), domain.CohortQuery{})
	require.NoError(t, err)

	require.Len(t, first, 8)
	assert.Equal(t, first, second)

	sizes := make([]float64, 0, len(first))
	for _, entry := range first {
		sizes = append(sizes, entry.SystemSizeKW)
		assert.InDelta(t, entry.SystemSizeKW*ExpectedYieldPerKW, entry.ExpectedGeneration, 1e-6)
		assert.False(t, entry.IsUser)
	}
	assert.Equal(t, []float64{5.2, 4.8, 6.0, 3.5, 7.2, 4.0, 5.8, 4.5}, sizes)
	assert.Equal(t, 718.0, first[0].ActualGeneration)
}

func TestFixtureCohort_ExcluiConta(t *testing.T) {
	cohort, err := NewFixtureCohort("")
	require.NoError(t, err)

	entries, err := cohort.ListCohort(context.Background(), domain.CohortQuery{ExcludeAccountID: "home-0"})
	require.NoError(t, err)

	assert.Len(t, entries, 7)
	assert.Equal(t, "home-1", entries[0].ID)
}

func TestFixtureCohort_Arquivo(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		wantLen int
	}{
		{
			name: "Arquivo válido",
			content: `homes:
  - name: Casa 1
    system_size_kw: 2
    factor: 0.5
`,
			wantLen: 1,
		},
		{
			name: "Potência zerada é rejeitada",
			content: `homes:
  - name: Casa 1
    system_size_kw: 0
    factor: 0.5
`,
			wantErr: true,
		},
		{
			name:    "YAML inválido é rejeitado",
			content: "homes: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cohort.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			cohort, err := NewFixtureCohort(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			entries, err := cohort.ListCohort(context.Background(), domain.CohortQuery{})
			require.NoError(t, err)
			assert.Len(t, entries, tt.wantLen)
			assert.Equal(t, "home-0", entries[0].ID)
			assert.Equal(t, 300.0, entries[0].ExpectedGeneration)
			assert.Equal(t, 150.0, entries[0].ActualGeneration)
		})
	}

	_, err := NewFixtureCohort(filepath.Join(t.TempDir(), "inexistente.yaml"))
	assert.Error(t, err)
}
