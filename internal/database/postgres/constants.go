package postgres

// BackendName identifies this store in logs and metrics
const BackendName = "postgres"

// Error Messages - Snapshot Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToCommit           = "failed to commit snapshot"
	ErrMsgFailedToUpsertAccount    = "failed to upsert account"
	ErrMsgFailedToQueryAccounts    = "failed to query accounts"
	ErrMsgFailedToScanAccount      = "failed to scan account"
)

const (
	upsertAccountQuery = `
		INSERT INTO slot_accounts
			(user_id, balance, last_bonus_claim, spins, total_bet, total_win, display_name, default_bet, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			balance          = EXCLUDED.balance,
			last_bonus_claim = EXCLUDED.last_bonus_claim,
			spins            = EXCLUDED.spins,
			total_bet        = EXCLUDED.total_bet,
			total_win        = EXCLUDED.total_win,
			display_name     = EXCLUDED.display_name,
			default_bet      = EXCLUDED.default_bet,
			updated_at       = NOW()
	`

	selectAccountsQuery = `
		SELECT user_id, balance, last_bonus_claim, spins, total_bet, total_win, display_name, default_bet
		FROM slot_accounts
	`
)
