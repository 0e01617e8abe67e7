package cms

// DiffIDs compares the submitted category ids with the currently linked ones.
// toInsert holds submitted ids that are not linked yet, toDelete holds linked
// ids that were not submitted. Both keep the order of their source slice and
// contain no duplicates.
func DiffIDs(submitted, current []int) (toInsert, toDelete []int) {
	submittedSet := make(map[int]struct{}, len(submitted))
	for _, id := range submitted {
		submittedSet[id] = struct{}{}
	}

	currentSet := make(map[int]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}

	seen := make(map[int]struct{}, len(submitted))
	for _, id := range submitted {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		if _, ok := currentSet[id]; !ok {
			toInsert = append(toInsert, id)
		}
	}

	for _, id := range current {
		if _, ok := submittedSet[id]; !ok {
			toDelete = append(toDelete, id)
			submittedSet[id] = struct{}{}
		}
	}

	return toInsert, toDelete
}
