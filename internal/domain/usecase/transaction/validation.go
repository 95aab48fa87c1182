package transaction

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
)

const systemActor = "system"

// Column widths of the transactions table
const (
	maxTenantLen         = 64
	maxActorLen          = 64
	maxDocumentIDLen     = 64
	maxCustomerRefLen    = 64
	maxIdempotencyKeyLen = 100
	maxDescriptionLen    = 500
)

// checkLength rejects a value the store would not hold
func checkLength(field, value string, limit int) error {
	if n := utf8.RuneCountInString(value); n > limit {
		return fmt.Errorf("%w: %s has %d characters, at most %d allowed", errs.ErrInvalidRequest, field, n, limit)
	}
	return nil
}

// DraftValidator turns raw drafts into posting requests without touching the store
type DraftValidator struct {
	enforceCategoryPairing bool
}

// NewDraftValidator creates a new DraftValidator
func NewDraftValidator(enforceCategoryPairing bool) *DraftValidator {
	return &DraftValidator{enforceCategoryPairing: enforceCategoryPairing}
}

// Validate checks every field of the draft and returns the typed request
func (v *DraftValidator) Validate(d entity.TransactionDraft) (entity.PostingRequest, error) {
	tenantID := strings.TrimSpace(d.TenantID)
	if tenantID == "" {
		return entity.PostingRequest{}, errs.ErrInvalidTenant
	}

	amount, err := entity.ParseAmount(d.Amount)
	if err != nil {
		return entity.PostingRequest{}, err
	}

	txType, err := entity.ParseTransactionType(d.Type)
	if err != nil {
		return entity.PostingRequest{}, err
	}

	category, err := entity.ParseCategory(d.Category)
	if err != nil {
		return entity.PostingRequest{}, err
	}

	method, err := entity.ParsePaymentMethod(d.PaymentMethod)
	if err != nil {
		return entity.PostingRequest{}, err
	}

	source, err := entity.ParseSource(d.Source)
	if err != nil {
		return entity.PostingRequest{}, err
	}

	doc, err := v.validateLinkedDocument(source, d.LinkedDocument)
	if err != nil {
		return entity.PostingRequest{}, err
	}

	if v.enforceCategoryPairing {
		if expected, fixed := category.ExpectedType(); fixed && expected != txType {
			return entity.PostingRequest{}, fmt.Errorf("%w: %s requires %s", errs.ErrCategoryTypeMismatch, category, expected)
		}
	}

	createdBy := strings.TrimSpace(d.CreatedBy)
	if createdBy == "" {
		createdBy = systemActor
	}

	req := entity.PostingRequest{
		TenantID:       tenantID,
		Type:           txType,
		Category:       category,
		Amount:         amount,
		PaymentMethod:  method,
		Source:         source,
		Description:    strings.TrimSpace(d.Description),
		Notes:          strings.TrimSpace(d.Notes),
		CustomerRef:    strings.TrimSpace(d.CustomerRef),
		LinkedDocument: doc,
		IdempotencyKey: strings.TrimSpace(d.IdempotencyKey),
		CreatedBy:      createdBy,
	}
	if err := checkRequestLengths(req); err != nil {
		return entity.PostingRequest{}, err
	}
	return req, nil
}

func checkRequestLengths(req entity.PostingRequest) error {
	documentID := ""
	if req.LinkedDocument != nil {
		documentID = req.LinkedDocument.ID
	}
	for _, c := range []struct {
		field string
		value string
		limit int
	}{
		{"tenant", req.TenantID, maxTenantLen},
		{"createdBy", req.CreatedBy, maxActorLen},
		{"linkedDocument.id", documentID, maxDocumentIDLen},
		{"customerRef", req.CustomerRef, maxCustomerRefLen},
		{"idempotencyKey", req.IdempotencyKey, maxIdempotencyKeyLen},
		{"description", req.Description, maxDescriptionLen},
	} {
		if err := checkLength(c.field, c.value, c.limit); err != nil {
			return err
		}
	}
	return nil
}

// validateLinkedDocument enforces that automatic entries point at a document and manual ones don't
func (v *DraftValidator) validateLinkedDocument(source entity.Source, doc *entity.LinkedDocument) (*entity.LinkedDocument, error) {
	if source == entity.SourceManual {
		if doc != nil {
			return nil, errs.ErrUnexpectedLinkedDocument
		}
		return nil, nil
	}

	if doc == nil {
		return nil, errs.ErrMissingLinkedDocument
	}

	kind, err := entity.ParseDocumentKind(string(doc.Kind))
	if err != nil {
		return nil, err
	}

	id := strings.TrimSpace(doc.ID)
	if id == "" {
		return nil, fmt.Errorf("%w: empty %s id", errs.ErrInvalidLinkedDocument, kind)
	}

	return &entity.LinkedDocument{Kind: kind, ID: id}, nil
}
