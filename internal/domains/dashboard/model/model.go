package model

import (
	visitDto "jamat/internal/domains/visit/model/dto"
	"jamat/shared/constant"
)

// Counts maps a resolved display name to a number of visits.
type Counts map[string]int

// Summary holds the frequency tables of one filtered visit set. HostCounts and VisitingCounts each sum to Total.
type Summary struct {
	Total          int
	HostCounts     Counts
	VisitingCounts Counts
	GroupCounts    Counts
}

// Aggregate counts visits per host name and per visiting mosque name.
// Unresolved names, including group visitors in the mosque table, land in the Unknown bucket.
func Aggregate(rows []visitDto.VisitRowResponse) Summary {
	summary := Summary{
		Total:          len(rows),
		HostCounts:     Counts{},
		VisitingCounts: Counts{},
		GroupCounts:    Counts{},
	}

	for _, row := range rows {
		summary.HostCounts[nameOrUnknown(row.HostName)]++
		summary.VisitingCounts[nameOrUnknown(row.VisitingMosqueName)]++

		if row.VisitingGroupID != nil {
			summary.GroupCounts[nameOrUnknown(row.VisitingGroupName)]++
		}
	}

	return summary
}

func nameOrUnknown(name *string) string {
	if name == nil || *name == "" {
		return constant.UnknownName
	}

	return *name
}
