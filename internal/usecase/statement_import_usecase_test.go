package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"condopay/internal/domain/entities"
	"condopay/internal/infrastructure/statement"
	mock_interfaces "condopay/internal/usecase/interfaces/mocks"
)

// fakeReconUC avoids an import cycle with the generated usecase mocks.
type fakeReconUC struct {
	reconcileEntry func(ctx context.Context, entry entities.StatementEntry) (entities.StatementEntry, error)
}

func (f *fakeReconUC) ReconcileEntry(ctx context.Context, entry entities.StatementEntry) (entities.StatementEntry, error) {
	if f.reconcileEntry == nil {
		return entry, nil
	}
	return f.reconcileEntry(ctx, entry)
}

func (f *fakeReconUC) ReconcileByID(context.Context, string) (entities.StatementEntry, error) {
	panic("not used")
}

func csvStatement(rows ...string) []byte {
	lines := append([]string{"Data;Historico;Valor"}, rows...)
	return []byte(strings.Join(lines, "\n"))
}

func TestStatementImportUseCase_ImportStatement(t *testing.T) {
	ctx := context.Background()

	t.Run("blank account id", func(t *testing.T) {
		uc := NewStatementImportUseCase(nil, nil)
		if _, err := uc.ImportStatement(ctx, "  ", csvStatement(), statement.FormatCSV); !errors.Is(err, ErrInvalidAccountID) {
			t.Fatalf("expected ErrInvalidAccountID, got %v", err)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		uc := NewStatementImportUseCase(nil, nil)
		if _, err := uc.ImportStatement(ctx, "acc-1", nil, statement.FormatCSV); !errors.Is(err, ErrEmptyStatementFile) {
			t.Fatalf("expected ErrEmptyStatementFile, got %v", err)
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		uc := NewStatementImportUseCase(nil, nil)
		if _, err := uc.ImportStatement(ctx, "acc-1", csvStatement("10/03/2025;PIX;450,00"), statement.Format("xlsx")); !errors.Is(err, statement.ErrUnsupportedFormat) {
			t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
		}
	})

	t.Run("valid rows import and reconcile, malformed rows count as failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		entryRepo := mock_interfaces.NewMockIStatementEntryRepository(ctrl)

		rows := make([]string, 0, 12)
		for i := 0; i < 10; i++ {
			rows = append(rows, fmt.Sprintf("10/03/2025;PIX RECEBIDO %d;%d,00", i, 100+i))
		}
		rows = append(rows, "not-a-date;DEPOSITO;50,00")
		rows = append(rows, "11/03/2025;TED RECEBIDA;abc")

		entryRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.StatementEntry{})).DoAndReturn(
			func(_ context.Context, e entities.StatementEntry) (entities.StatementEntry, error) {
				if e.ID == "" || e.AccountID != "acc-1" || e.ExternalDocID == "" {
					t.Fatalf("unexpected entry: %+v", e)
				}
				if e.Category != entities.EntryCategoryPix {
					t.Fatalf("category = %s, want pix", e.Category)
				}
				if e.ReconStatus != entities.ReconciliationStatusPendente {
					t.Fatalf("recon status = %s", e.ReconStatus)
				}
				return e, nil
			},
		).Times(10)

		reconciled := 0
		reconUC := &fakeReconUC{reconcileEntry: func(_ context.Context, entry entities.StatementEntry) (entities.StatementEntry, error) {
			reconciled++
			return entry, nil
		}}

		uc := NewStatementImportUseCase(entryRepo, reconUC)
		result, err := uc.ImportStatement(ctx, "acc-1", csvStatement(rows...), statement.FormatCSV)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Imported != 10 || result.Failed != 2 || result.Skipped != 0 {
			t.Fatalf("unexpected result: %+v", result)
		}
		if len(result.Errors) != 2 {
			t.Fatalf("errors = %v", result.Errors)
		}
		if reconciled != 10 {
			t.Fatalf("reconciled = %d, want 10", reconciled)
		}
	})

	t.Run("re-import skips duplicates silently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		entryRepo := mock_interfaces.NewMockIStatementEntryRepository(ctrl)

		entryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.StatementEntry{}, entities.ErrDuplicateStatementEntry).Times(2)

		uc := NewStatementImportUseCase(entryRepo, nil)
		data := csvStatement(
			"10/03/2025;PIX RECEBIDO;450,00",
			"11/03/2025;BOLETO PAGO;-120,00",
		)
		result, err := uc.ImportStatement(ctx, "acc-1", data, statement.FormatCSV)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Imported != 0 || result.Skipped != 2 || result.Failed != 0 {
			t.Fatalf("unexpected result: %+v", result)
		}
		if len(result.Errors) != 0 {
			t.Fatalf("expected no errors, got %v", result.Errors)
		}
	})

	t.Run("reconcile failure leaves entry imported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		entryRepo := mock_interfaces.NewMockIStatementEntryRepository(ctrl)
		entryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.StatementEntry) (entities.StatementEntry, error) { return e, nil },
		)

		reconUC := &fakeReconUC{reconcileEntry: func(context.Context, entities.StatementEntry) (entities.StatementEntry, error) {
			return entities.StatementEntry{}, errors.New("db down")
		}}

		uc := NewStatementImportUseCase(entryRepo, reconUC)
		result, err := uc.ImportStatement(ctx, "acc-1", csvStatement("10/03/2025;PIX RECEBIDO;450,00"), statement.FormatCSV)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Imported != 1 || result.Failed != 0 {
			t.Fatalf("unexpected result: %+v", result)
		}
	})
}

func TestStatementImportUseCase_ListEntries(t *testing.T) {
	ctx := context.Background()

	t.Run("blank account id", func(t *testing.T) {
		uc := NewStatementImportUseCase(nil, nil)
		if _, err := uc.ListEntries(ctx, "", ""); !errors.Is(err, ErrInvalidAccountID) {
			t.Fatalf("expected ErrInvalidAccountID, got %v", err)
		}
	})

	t.Run("delegates with filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		entryRepo := mock_interfaces.NewMockIStatementEntryRepository(ctrl)
		uc := NewStatementImportUseCase(entryRepo, nil)

		want := []entities.StatementEntry{{ID: "e-1"}}
		entryRepo.EXPECT().ListByAccount(gomock.Any(), "acc-1", entities.ReconciliationStatusPendente).Return(want, nil)

		got, err := uc.ListEntries(ctx, "acc-1", entities.ReconciliationStatusPendente)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "e-1" {
			t.Fatalf("unexpected entries: %+v", got)
		}
	})
}
