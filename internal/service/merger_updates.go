package service

import (
	"context"

	"github.com/MKhiriev/go-bookmark-merger/models"
)

// groupedUpdates is the validated, deduplicated remote input of a merge.
type groupedUpdates struct {
	permanent []models.RemoteUpdate
	byParent  map[string][]models.RemoteUpdate
}

// groupRemoteUpdates drops deletions and invalid updates, resolves GUID
// collisions and groups the survivors by parent GUID. Every dropped update
// is counted in report.
func (m *BookmarkModelMerger) groupRemoteUpdates(ctx context.Context, report *models.MergeReport) groupedUpdates {
	report.Updates = len(m.updates)

	var permanent []models.RemoteUpdate
	var candidates []models.RemoteUpdate
	for _, update := range m.updates {
		if update.IsDeleted {
			report.Deletions++
			continue
		}

		if update.IsPermanent() {
			if update.Specifics.GUID == "" {
				update.Specifics.GUID = models.PermanentFolder(update.ServerDefinedUniqueTag).GUID()
			}
			permanent = append(permanent, update)
			continue
		}

		if err := m.validator.Validate(ctx, update); err != nil {
			report.Invalid[err.Error()]++
			m.logger.Debug().
				Str("func", "*BookmarkModelMerger.groupRemoteUpdates").
				Str("server_id", update.ServerID).
				Str("guid", update.Specifics.GUID).
				Err(err).
				Msg("dropping invalid remote update")
			continue
		}
		candidates = append(candidates, update)
	}

	winners := m.deduplicate(candidates, report)
	winners = m.dropRepeatedServerIDs(permanent, winners, report)

	byParent := make(map[string][]models.RemoteUpdate)
	for _, update := range winners {
		parent := update.Specifics.ParentGUID
		byParent[parent] = append(byParent[parent], update)
	}

	return groupedUpdates{permanent: permanent, byParent: byParent}
}

// deduplicate keeps one update per GUID. The winner takes the slot of the
// first occurrence so the relative input order of survivors is preserved.
func (m *BookmarkModelMerger) deduplicate(updates []models.RemoteUpdate, report *models.MergeReport) []models.RemoteUpdate {
	slot := make(map[string]int, len(updates))
	out := make([]models.RemoteUpdate, 0, len(updates))

	for _, update := range updates {
		guid := update.Specifics.GUID
		i, seen := slot[guid]
		if !seen {
			slot[guid] = len(out)
			out = append(out, update)
			continue
		}

		kind := classifyDuplicate(out[i], update)
		report.Duplicates[kind]++
		m.logger.Warn().
			Str("func", "*BookmarkModelMerger.deduplicate").
			Str("guid", guid).
			Str("classification", string(kind)).
			Msg("remote updates share a guid")

		if prefersUpdate(update, out[i]) {
			out[i] = update
		}
	}
	return out
}

// dropRepeatedServerIDs keeps the first update of every server id. Permanent
// folders claim their ids before regular updates are considered.
func (m *BookmarkModelMerger) dropRepeatedServerIDs(permanent, updates []models.RemoteUpdate, report *models.MergeReport) []models.RemoteUpdate {
	seen := make(map[string]struct{}, len(permanent)+len(updates))
	for _, update := range permanent {
		seen[update.ServerID] = struct{}{}
	}

	out := updates[:0]
	for _, update := range updates {
		if _, dup := seen[update.ServerID]; dup {
			report.Invalid[ErrRepeatedServerID.Error()]++
			m.logger.Warn().
				Str("func", "*BookmarkModelMerger.dropRepeatedServerIDs").
				Str("server_id", update.ServerID).
				Str("guid", update.Specifics.GUID).
				Msg("dropping remote update with repeated server id")
			continue
		}
		seen[update.ServerID] = struct{}{}
		out = append(out, update)
	}
	return out
}

// prefersUpdate reports whether candidate should replace current. A folder
// wins over a bookmark; otherwise the later creation time wins and a tie
// keeps current.
func prefersUpdate(candidate, current models.RemoteUpdate) bool {
	if candidate.Specifics.IsFolder() != current.Specifics.IsFolder() {
		return candidate.Specifics.IsFolder()
	}
	return candidate.Specifics.CreationTime.After(current.Specifics.CreationTime)
}

func classifyDuplicate(a, b models.RemoteUpdate) models.DuplicateKind {
	if a.Specifics.Kind != b.Specifics.Kind {
		return models.DuplicateKindMismatch
	}

	if a.Specifics.IsFolder() {
		if remoteTitle(a.Specifics) == remoteTitle(b.Specifics) {
			return models.DuplicateSameFolderTitle
		}
		return models.DuplicateDifferentFolderTitle
	}

	if a.Specifics.URL == b.Specifics.URL {
		return models.DuplicateSameURL
	}
	return models.DuplicateDifferentURL
}

// remoteTitle is the title used to compare remote folders with each other.
func remoteTitle(specifics models.BookmarkSpecifics) string {
	if specifics.FullTitle != "" {
		return specifics.FullTitle
	}
	return specifics.LegacyCanonicalizedTitle
}
