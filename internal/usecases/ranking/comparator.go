package ranking

import (
	"math"
	"sort"

	"github.com/vfg2006/bill-insights-api/internal/domain"
	"github.com/vfg2006/bill-insights-api/pkg/utils"
)

const (
	BandTopPerformer   = "Top performer"
	BandAboveAverage   = "Above average"
	BandNeedsAttention = "Needs attention"

	NeighborhoodRankTop     = "Top 25%"
	NeighborhoodRankAverage = "Average"

	// UserEntryID identifica a entrada do usuário quando a conta não tem identificador
	UserEntryID = "current-user"
)

// Score é a geração real sobre a esperada, em pontos de 0 a 100
func Score(actual, expected float64) float64 {
	if expected <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(utils.Clamp(actual/expected*100, 0, 100))
}

// Rank pontua e ordena as entradas. Empates de pontuação ficam com o menor desvio
// entre esperado e real e, depois, com a ordem de inserção.
func Rank(entries []domain.RankingEntry) []domain.RankingEntry {
	ranked := make([]domain.RankingEntry, len(entries))
	copy(ranked, entries)

	for i := range ranked {
		ranked[i].Score = Score(ranked[i].ActualGeneration, ranked[i].ExpectedGeneration)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return deviation(ranked[i]) < deviation(ranked[j])
	})

	for i := range ranked {
		ranked[i].Position = i + 1
	}

	return ranked
}

// Compare posiciona o usuário no grupo de referência. O usuário entra exatamente uma vez.
func Compare(subject domain.PeerSubject, cohort []domain.RankingEntry) domain.PeerComparison {
	userID := subject.ID
	if userID == "" {
		userID = UserEntryID
	}

	entries := make([]domain.RankingEntry, 0, len(cohort)+1)
	for _, entry := range cohort {
		if entry.IsUser || entry.ID == userID {
			continue
		}
		entry.IsUser = false
		entries = append(entries, entry)
	}

	entries = append(entries, domain.RankingEntry{
		ID:                 userID,
		Name:               subject.Name,
		ActualGeneration:   subject.ActualGeneration,
		ExpectedGeneration: subject.ExpectedGeneration,
		SystemSizeKW:       subject.SystemSizeKW,
		Location:           subject.Location,
		IsUser:             true,
	})

	ranked := Rank(entries)

	comparison := domain.PeerComparison{
		Total:   len(ranked),
		Entries: ranked,
	}

	for _, entry := range ranked {
		comparison.TopGeneration = math.Max(comparison.TopGeneration, entry.ActualGeneration)
		if entry.IsUser {
			comparison.Rank = entry.Position
			comparison.Score = entry.Score
		}
	}

	missed := math.Max(0, subject.ExpectedGeneration-subject.ActualGeneration)
	comparison.MissedGeneration = utils.RoundWithTwoDecimalPlace(missed)
	comparison.LossPercentage = utils.RoundWithTwoDecimalPlace(utils.Percentage(missed, subject.ExpectedGeneration))
	comparison.Band = Band(comparison.Score)
	comparison.NeighborhoodRank = NeighborhoodRank(comparison.Rank, comparison.Total)

	return comparison
}

// Band classifica a pontuação do usuário
func Band(score float64) string {
	switch {
	case score >= 90:
		return BandTopPerformer
	case score >= 75:
		return BandAboveAverage
	default:
		return BandNeedsAttention
	}
}

// NeighborhoodRank indica se a posição está no primeiro quartil do grupo
func NeighborhoodRank(rank, total int) string {
	if total <= 0 || rank <= 0 {
		return NeighborhoodRankAverage
	}
	if rank <= (total+3)/4 {
		return NeighborhoodRankTop
	}
	return NeighborhoodRankAverage
}

func deviation(entry domain.RankingEntry) float64 {
	return math.Abs(entry.ExpectedGeneration - entry.ActualGeneration)
}
