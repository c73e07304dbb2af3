package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bussnote/bussnote_backend/internal/apperrors"
	"github.com/bussnote/bussnote_backend/internal/core/domain"
	portsrepo "github.com/bussnote/bussnote_backend/internal/core/ports/repositories"
	"github.com/bussnote/bussnote_backend/internal/models"
	"github.com/bussnote/bussnote_backend/internal/utils/mapping"
	"github.com/bussnote/bussnote_backend/internal/utils/pagination"
)

const invoiceSelectColumns = `
	i.invoice_id, i.invoice_number, i.seller_party_id, i.buyer_party_id,
	i.invoice_date, i.due_days, i.due_date, i.terms, i.currency_code,
	i.status, i.payment_date, i.remarks,
	i.brokerage_rate, i.exchange_rate, i.received_brokerage,
	i.subtotal, i.brokerage, i.brokerage_in_inr, i.balance_brokerage,
	i.created_at, i.created_by, i.last_updated_at, i.last_updated_by,
	s.name AS seller_name, b.name AS buyer_name`

const invoiceFromJoin = `
	FROM invoices i
	JOIN parties s ON s.party_id = i.seller_party_id
	JOIN parties b ON b.party_id = i.buyer_party_id`

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepository {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.InvoiceRepository = (*PgxInvoiceRepository)(nil)

func scanInvoiceRow(row pgx.CollectableRow) (models.Invoice, error) {
	var inv models.Invoice
	err := row.Scan(
		&inv.InvoiceID,
		&inv.InvoiceNumber,
		&inv.SellerPartyID,
		&inv.BuyerPartyID,
		&inv.InvoiceDate,
		&inv.DueDays,
		&inv.DueDate,
		&inv.Terms,
		&inv.CurrencyCode,
		&inv.Status,
		&inv.PaymentDate,
		&inv.Remarks,
		&inv.BrokerageRate,
		&inv.ExchangeRate,
		&inv.ReceivedBrokerage,
		&inv.Subtotal,
		&inv.Brokerage,
		&inv.BrokerageInINR,
		&inv.BalanceBrokerage,
		&inv.CreatedAt,
		&inv.CreatedBy,
		&inv.LastUpdatedAt,
		&inv.LastUpdatedBy,
		&inv.SellerName,
		&inv.BuyerName,
	)
	return inv, err
}

// formatInvoiceNumber renders INV-<year>-<seq>, zero-padding the sequence to
// four digits. Sequences past 9999 keep their natural width.
func formatInvoiceNumber(prefix string, seq int) string {
	return fmt.Sprintf("%s%04d", prefix, seq)
}

// nextInvoiceNumber assigns INV-<year>-<seq> inside the save transaction.
// The per-year sequence restarts at 0001; the max-scan plus the row lock on
// insert keeps numbers unique under concurrent saves. The sequence is
// compared numerically, not as text, so numbers stay ordered past 9999.
func (r *PgxInvoiceRepository) nextInvoiceNumber(ctx context.Context, tx pgx.Tx, invoiceDate time.Time) (string, error) {
	year := invoiceDate.Year()
	prefix := fmt.Sprintf("INV-%d-", year)

	var maxSeq int
	err := tx.QueryRow(ctx,
		`SELECT COALESCE(MAX((substring(invoice_number from '[0-9]+$'))::int), 0) FROM invoices WHERE invoice_number LIKE $1;`,
		prefix+"%",
	).Scan(&maxSeq)
	if err != nil {
		return "", fmt.Errorf("failed to query max invoice number for %d: %w", year, err)
	}

	return formatInvoiceNumber(prefix, maxSeq+1), nil
}

func insertItemsBatch(invoiceID string, items []models.InvoiceItem) *pgx.Batch {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO invoice_items (item_id, invoice_id, description, quantity, rate)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, item := range items {
		batch.Queue(query, item.ItemID, invoiceID, item.Description, item.Quantity, item.Rate)
	}
	return batch
}

// SaveInvoice inserts the invoice and its line items in one transaction,
// assigning the invoice number inside that transaction. Returns the number.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, items []domain.InvoiceItem) (string, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer r.Rollback(ctx, tx)

	number, err := r.nextInvoiceNumber(ctx, tx, invoice.InvoiceDate)
	if err != nil {
		return "", err
	}
	invoice.InvoiceNumber = number
	modelInv := mapping.ToModelInvoice(invoice)

	query := `
		INSERT INTO invoices (
			invoice_id, invoice_number, seller_party_id, buyer_party_id,
			invoice_date, due_days, due_date, terms, currency_code,
			status, payment_date, remarks,
			brokerage_rate, exchange_rate, received_brokerage,
			subtotal, brokerage, brokerage_in_inr, balance_brokerage,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);
	`
	_, err = tx.Exec(ctx, query,
		modelInv.InvoiceID,
		modelInv.InvoiceNumber,
		modelInv.SellerPartyID,
		modelInv.BuyerPartyID,
		modelInv.InvoiceDate,
		modelInv.DueDays,
		modelInv.DueDate,
		modelInv.Terms,
		modelInv.CurrencyCode,
		modelInv.Status,
		modelInv.PaymentDate,
		modelInv.Remarks,
		modelInv.BrokerageRate,
		modelInv.ExchangeRate,
		modelInv.ReceivedBrokerage,
		modelInv.Subtotal,
		modelInv.Brokerage,
		modelInv.BrokerageInINR,
		modelInv.BalanceBrokerage,
		modelInv.CreatedAt,
		modelInv.CreatedBy,
		modelInv.LastUpdatedAt,
		modelInv.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 is the Postgres unique violation code.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", fmt.Errorf("%w: invoice number %s", apperrors.ErrDuplicate, number)
		}
		return "", fmt.Errorf("failed to save invoice %s: %w", modelInv.InvoiceID, err)
	}

	modelItems := make([]models.InvoiceItem, len(items))
	for i, item := range items {
		modelItems[i] = mapping.ToModelInvoiceItem(item)
	}
	br := tx.SendBatch(ctx, insertItemsBatch(modelInv.InvoiceID, modelItems))
	for range modelItems {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return "", fmt.Errorf("failed to save invoice items for %s: %w", modelInv.InvoiceID, err)
		}
	}
	if err := br.Close(); err != nil {
		return "", fmt.Errorf("failed to close item batch for %s: %w", modelInv.InvoiceID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return "", err
	}
	return number, nil
}

// FindInvoiceByID retrieves an invoice with party names joined and its line
// items loaded.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceSelectColumns + invoiceFromJoin + ` WHERE i.invoice_id = $1;`

	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice %s: %w", invoiceID, err)
	}
	modelInv, err := pgx.CollectOneRow(rows, scanInvoiceRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("invoice not found")
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}

	items, err := r.FindItemsByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	domainInv := mapping.ToDomainInvoice(modelInv)
	domainInv.Items = items
	return &domainInv, nil
}

// FindItemsByInvoiceID retrieves an invoice's line items in insertion order.
func (r *PgxInvoiceRepository) FindItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	query := `
		SELECT item_id, invoice_id, description, quantity, rate
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY item_id;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for invoice %s: %w", invoiceID, err)
	}
	defer rows.Close()

	modelItems, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.InvoiceItem, error) {
		var item models.InvoiceItem
		err := row.Scan(&item.ItemID, &item.InvoiceID, &item.Description, &item.Quantity, &item.Rate)
		return item, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan items for invoice %s: %w", invoiceID, err)
	}

	return mapping.ToDomainInvoiceItemSlice(modelItems), nil
}

// UpdateInvoice rewrites the invoice row; when items is non-nil the line
// items are replaced in the same transaction.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice, items []domain.InvoiceItem) error {
	modelInv := mapping.ToModelInvoice(invoice)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE invoices
		SET seller_party_id = $2, buyer_party_id = $3, invoice_date = $4,
			due_days = $5, due_date = $6, terms = $7, currency_code = $8,
			remarks = $9, brokerage_rate = $10, exchange_rate = $11,
			received_brokerage = $12, subtotal = $13, brokerage = $14,
			brokerage_in_inr = $15, balance_brokerage = $16,
			last_updated_at = $17, last_updated_by = $18
		WHERE invoice_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		modelInv.InvoiceID,
		modelInv.SellerPartyID,
		modelInv.BuyerPartyID,
		modelInv.InvoiceDate,
		modelInv.DueDays,
		modelInv.DueDate,
		modelInv.Terms,
		modelInv.CurrencyCode,
		modelInv.Remarks,
		modelInv.BrokerageRate,
		modelInv.ExchangeRate,
		modelInv.ReceivedBrokerage,
		modelInv.Subtotal,
		modelInv.Brokerage,
		modelInv.BrokerageInINR,
		modelInv.BalanceBrokerage,
		modelInv.LastUpdatedAt,
		modelInv.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s: %w", modelInv.InvoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if items != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1;`, modelInv.InvoiceID); err != nil {
			return fmt.Errorf("failed to clear items for invoice %s: %w", modelInv.InvoiceID, err)
		}
		modelItems := make([]models.InvoiceItem, len(items))
		for i, item := range items {
			modelItems[i] = mapping.ToModelInvoiceItem(item)
		}
		br := tx.SendBatch(ctx, insertItemsBatch(modelInv.InvoiceID, modelItems))
		for range modelItems {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("failed to replace items for invoice %s: %w", modelInv.InvoiceID, err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to close item batch for %s: %w", modelInv.InvoiceID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// UpdateInvoiceRemarks updates only the free-text remarks.
func (r *PgxInvoiceRepository) UpdateInvoiceRemarks(ctx context.Context, invoiceID string, remarks string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE invoices
		SET remarks = $2, last_updated_at = $3, last_updated_by = $4
		WHERE invoice_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, invoiceID, remarks, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update remarks for invoice %s: %w", invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateInvoiceStatus sets the stored status and the payment date. A nil
// paymentDate clears the column.
func (r *PgxInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, paymentDate *time.Time, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE invoices
		SET status = $2, payment_date = $3, last_updated_at = $4, last_updated_by = $5
		WHERE invoice_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, invoiceID, string(status), paymentDate, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status for invoice %s: %w", invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteInvoice removes the invoice together with its line items, related
// transactions and related activities in one transaction.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM activities WHERE invoice_id = $1;`, invoiceID); err != nil {
		return fmt.Errorf("failed to delete activities for invoice %s: %w", invoiceID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE invoice_id = $1;`, invoiceID); err != nil {
		return fmt.Errorf("failed to delete transactions for invoice %s: %w", invoiceID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1;`, invoiceID); err != nil {
		return fmt.Errorf("failed to delete items for invoice %s: %w", invoiceID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// ListInvoices returns a token-paginated page of invoices ordered by
// (invoice_date DESC, created_at DESC) with party names joined. Line items
// are not loaded for listings.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, filter portsrepo.InvoiceListFilter, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	var conditions []string
	var args []interface{}
	argPos := 1

	addArg := func(v interface{}) string {
		args = append(args, v)
		pos := argPos
		argPos++
		return fmt.Sprintf("$%d", pos)
	}

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("i.status = %s", addArg(string(filter.Status))))
	}
	if filter.OverdueOnly {
		conditions = append(conditions, fmt.Sprintf("i.due_date < %s", addArg(filter.AsOf)))
	}
	if filter.PartyID != "" {
		p := addArg(filter.PartyID)
		conditions = append(conditions, fmt.Sprintf("(i.seller_party_id = %s OR i.buyer_party_id = %s)", p, p))
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("i.invoice_date >= %s", addArg(*filter.From)))
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("i.invoice_date <= %s", addArg(*filter.To)))
	}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		d := addArg(lastDate)
		c := addArg(lastCreatedAt)
		conditions = append(conditions, fmt.Sprintf("(i.invoice_date < %s OR (i.invoice_date = %s AND i.created_at < %s))", d, d, c))
	}

	query := `SELECT ` + invoiceSelectColumns + invoiceFromJoin
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY i.invoice_date DESC, i.created_at DESC LIMIT %s;", addArg(limit+1))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	modelInvoices, err := pgx.CollectRows(rows, scanInvoiceRow)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan invoices: %w", err)
	}

	var nextTokenVal *string
	if len(modelInvoices) > limit {
		modelInvoices = modelInvoices[:limit]
		last := modelInvoices[len(modelInvoices)-1]
		token := pagination.EncodeToken(last.InvoiceDate, last.CreatedAt)
		nextTokenVal = &token
	}

	return mapping.ToDomainInvoiceSlice(modelInvoices), nextTokenVal, nil
}

// FindInvoicesByParty returns all invoices naming the party as seller or
// buyer, newest first.
func (r *PgxInvoiceRepository) FindInvoicesByParty(ctx context.Context, partyID string) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceSelectColumns + invoiceFromJoin + `
		WHERE i.seller_party_id = $1 OR i.buyer_party_id = $1
		ORDER BY i.invoice_date DESC, i.created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices for party %s: %w", partyID, err)
	}
	modelInvoices, err := pgx.CollectRows(rows, scanInvoiceRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan invoices for party %s: %w", partyID, err)
	}

	return mapping.ToDomainInvoiceSlice(modelInvoices), nil
}
