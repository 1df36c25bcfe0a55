package validators

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-bookmark-merger/internal/utils"
	"github.com/MKhiriev/go-bookmark-merger/models"
	"github.com/google/uuid"
)

// Field name constants used to restrict validation of a remote update to a
// subset of checks.
const (
	// FieldServerID targets the server-assigned entity id.
	FieldServerID = "id_string"

	// FieldGUID targets the entity GUID: a canonical UUID that is not
	// reserved for the root or a permanent folder.
	FieldGUID = "guid"

	// FieldParentGUID targets the GUID of the containing folder.
	FieldParentGUID = "parent_guid"

	// FieldKind targets the folder/bookmark discriminator.
	FieldKind = "kind"

	// FieldURL targets the bookmark URL. Bookmarks need an absolute URL,
	// folders must have none.
	FieldURL = "url"

	// FieldPosition targets the sibling ordering key.
	FieldPosition = "unique_position"

	// FieldOriginator targets consistency of the GUID with the originator
	// metadata of the update.
	FieldOriginator = "originator"
)

var defaultRemoteUpdateFields = []string{
	FieldServerID, FieldGUID, FieldParentGUID, FieldKind, FieldURL, FieldPosition, FieldOriginator,
}

// RemoteUpdateValidator validates non-permanent remote bookmark updates
// before they enter the merge.
type RemoteUpdateValidator struct {
}

func NewRemoteUpdateValidator() Validator {
	return &RemoteUpdateValidator{}
}

// Validate accepts models.RemoteUpdate or *models.RemoteUpdate. When no
// fields are given every check runs in a fixed order and the first failure
// is returned.
func (v *RemoteUpdateValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RemoteUpdate:
		return v.validateRemoteUpdate(ctx, value, fields...)
	case *models.RemoteUpdate:
		return v.validateRemoteUpdate(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RemoteUpdateValidator) validateRemoteUpdate(_ context.Context, update models.RemoteUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultRemoteUpdateFields
	}

	specifics := update.Specifics
	for _, f := range fields {
		switch f {
		case FieldServerID:
			if update.ServerID == "" {
				return ErrMissingServerID
			}
		case FieldGUID:
			if !utils.IsValidGUID(specifics.GUID) {
				return ErrInvalidGUID
			}
			if models.IsPermanentGUID(specifics.GUID) {
				return ErrPermanentGUID
			}
		case FieldParentGUID:
			if !utils.IsValidGUID(specifics.ParentGUID) {
				return ErrInvalidParentGUID
			}
		case FieldKind:
			if !specifics.Kind.IsValid() {
				return ErrInvalidKind
			}
		case FieldURL:
			if err := validateURL(specifics); err != nil {
				return err
			}
		case FieldPosition:
			if !specifics.Position.IsValid() {
				return ErrInvalidPosition
			}
		case FieldOriginator:
			if !guidMatchesOriginator(update) {
				return ErrGUIDMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateURL(specifics models.BookmarkSpecifics) error {
	if specifics.IsFolder() {
		if specifics.URL != "" {
			return ErrFolderWithURL
		}
		return nil
	}

	u, err := url.Parse(specifics.URL)
	if err != nil || !u.IsAbs() || (u.Host == "" && u.Opaque == "") {
		return ErrInvalidURL
	}
	return nil
}

// guidMatchesOriginator checks the GUID against the originator metadata.
// Clients that already had GUIDs use them as client item ids; older clients
// used arbitrary ids, from which the GUID is derived.
func guidMatchesOriginator(update models.RemoteUpdate) bool {
	if update.OriginatorClientItemID == "" {
		return false
	}

	if parsed, err := uuid.Parse(update.OriginatorClientItemID); err == nil {
		return parsed.String() == update.Specifics.GUID
	}

	return utils.InferGUID(update.OriginatorCacheGUID, update.OriginatorClientItemID) == update.Specifics.GUID
}
