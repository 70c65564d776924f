package sdkerr

// programError is one entry in the on-chain error table.
type programError struct {
	Code    Code
	Message string
}

// programErrorTable maps ledger-program error numbers to domain errors.
// Custom program errors are numbered from 6000 (0x1770); the entries
// below cover every failure the escrow and account programs emit. This
// table is the extension point for new program error codes.
var programErrorTable = map[uint64]programError{
	0x1: {CodeInsufficientBalance, "Insufficient SOL to pay transaction fees"},

	0x1770: {CodeInvalidAmount, "Amount must be greater than zero"},
	0x1771: {CodeInsufficientBalance, "Insufficient token balance for this transfer"},
	0x1772: {CodeTransferNotActive, "Transfer is no longer active"},
	0x1773: {CodeNotRecipient, "Signer is not the transfer recipient"},
	0x1774: {CodeNotSender, "Signer is not the transfer sender"},
	0x1775: {CodeClaimWindowNotOpen, "Claim window has not opened yet"},
	0x1776: {CodeClaimWindowClosed, "Claim window has closed"},
	0x1777: {CodeAccountPaused, "Account is paused"},
	0x1778: {CodeLimitExceeded, "Amount exceeds the operator per-transaction limit"},
	0x1779: {CodeNotOperator, "Signer is not an operator on this account"},
}

// lookupProgramError resolves a raw program error number, reporting
// whether a mapping exists. Unmapped numbers degrade to the structured
// API error path, never a panic.
func lookupProgramError(n uint64) (programError, bool) {
	pe, ok := programErrorTable[n]
	return pe, ok
}
