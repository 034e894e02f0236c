package database

import (
	"fmt"

	"gorm.io/gorm"
)

// MigrateConstraints applies idempotent raw migrations on top of
// AutoMigrate:
// - money/quantity columns forced to NUMERIC
// - composite unique indexes for the versioned documents
// - partial unique indexes enforcing "one current version per number"
// - basic CHECK constraints
func MigrateConstraints() error {
	return DB.Transaction(func(tx *gorm.DB) error {
		alters := []string{
			`ALTER TABLE purchase_order_products ALTER COLUMN quantity    TYPE numeric(10,2)`,
			`ALTER TABLE purchase_order_products ALTER COLUMN rate        TYPE numeric(10,2)`,
			`ALTER TABLE purchase_order_products ALTER COLUMN amount      TYPE numeric(12,2)`,
			`ALTER TABLE quotation_versions      ALTER COLUMN subtotal    TYPE numeric(12,2)`,
			`ALTER TABLE quotation_versions      ALTER COLUMN grand_total TYPE numeric(12,2)`,
			`ALTER TABLE invoices                ALTER COLUMN taxable_value TYPE numeric(12,2)`,
			`ALTER TABLE invoices                ALTER COLUMN grand_total   TYPE numeric(12,2)`,
			`ALTER TABLE invoice_items           ALTER COLUMN amount        TYPE numeric(12,2)`,
		}
		for _, stmt := range alters {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("money type migration failed on: %s - %w", stmt, err)
			}
		}

		indexes := []string{
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_po_no_version ON purchase_orders (purchase_order_no, version)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_quotation_versions_no ON quotation_versions (quotation_id, version_no)`,
			// at most one current/active version per document
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_po_no_current ON purchase_orders (purchase_order_no) WHERE is_current`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_quotation_active_version ON quotation_versions (quotation_id) WHERE is_active`,
			`CREATE INDEX IF NOT EXISTS idx_leads_followup_date ON leads (followup_date)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_idempotency_keys_key ON idempotency_keys (key)`,
		}
		for _, stmt := range indexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("index migration failed on: %s - %w", stmt, err)
			}
		}

		checks := []string{
			check("purchase_order_products", "chk_po_products_qty_nonneg", "quantity >= 0 AND rate >= 0"),
			check("quotation_high_side_items", "chk_quot_high_qty_nonneg", "quantity >= 0 AND unit_price >= 0"),
			check("quotation_low_side_items", "chk_quot_low_qty_nonneg", "quantity >= 0 AND unit_price >= 0"),
			check("invoice_items", "chk_invoice_items_qty_nonneg", "quantity >= 0 AND rate >= 0"),
			check("purchase_orders", "chk_po_rounding_bounded", "rounding_adjustment BETWEEN -10.00 AND 10.00"),
		}
		for _, stmt := range checks {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("check constraint migration failed: %w", err)
			}
		}

		return nil
	})
}

func check(table, name, expr string) string {
	return fmt.Sprintf(`
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint
		WHERE conrelid = '%s'::regclass
		  AND conname  = '%s'
	) THEN
		ALTER TABLE %s ADD CONSTRAINT %s CHECK (%s);
	END IF;
END $$;`, table, name, table, name, expr)
}
