package dto

import (
	"time"

	"github.com/signance/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Amount      string `json:"amount" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=expense income"`
	Description string `json:"description,omitempty" binding:"omitempty,max=255"`
	Date        string `json:"date,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// All fields are required; the update replaces the stored record.
type UpdateTransactionRequest struct {
	Amount      string `json:"amount" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=expense income"`
	Description string `json:"description,omitempty" binding:"omitempty,max=255"`
	Date        string `json:"date,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ToTransactionResponse converts a transaction entity to its API representation.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID,
		UserID:      txn.UserID,
		Amount:      txn.Amount.StringFixed(2),
		Category:    string(txn.Category),
		Type:        string(txn.Type),
		Description: txn.Description,
		Date:        txn.Date.Format("2006-01-02"),
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
}

// ToTransactionListResponse converts a list of transaction entities to the
// list response shape.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, txn := range transactions {
		responses[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{
		Transactions: responses,
		Total:        len(responses),
	}
}
