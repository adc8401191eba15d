package ranking

import "sort"

// Compute orders the aggregates into a full leaderboard and assigns dense
// 1-based ranks. The tie-break chain: points descending, roster value
// ascending, distinct scoring players descending, registration time
// ascending, and finally user id so the ordering is total.
// Pure function: same input, same output.
func Compute(aggregates []UserAggregate) []Snapshot {
	rows := append([]UserAggregate(nil), aggregates...)

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].RosterValue != rows[j].RosterValue {
			return rows[i].RosterValue < rows[j].RosterValue
		}
		if rows[i].DistinctScorers != rows[j].DistinctScorers {
			return rows[i].DistinctScorers > rows[j].DistinctScorers
		}
		if !rows[i].RegisteredAt.Equal(rows[j].RegisteredAt) {
			return rows[i].RegisteredAt.Before(rows[j].RegisteredAt)
		}
		return rows[i].UserID < rows[j].UserID
	})

	out := make([]Snapshot, 0, len(rows))
	for idx, row := range rows {
		out = append(out, Snapshot{
			UserID:      row.UserID,
			Rank:        idx + 1,
			Points:      row.Points,
			RosterValue: row.RosterValue,
		})
	}

	return out
}
