package mapping

import (
	"fmt"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/models"
)

// ToModelBusiness converts a domain Business to a model Business
func ToModelBusiness(d domain.Business) (models.Business, error) {
	id, err := ToInt64ID(d.BusinessID)
	if err != nil {
		return models.Business{}, err
	}
	return models.Business{
		BusinessID:  id,
		Owner:       d.Owner,
		Name:        d.Name,
		Type:        d.Type,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainBusiness converts a model Business to a domain Business
func ToDomainBusiness(m models.Business) domain.Business {
	return domain.Business{
		BusinessID:  uint64(m.BusinessID),
		Owner:       m.Owner,
		Name:        m.Name,
		Type:        m.Type,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) (models.Transaction, error) {
	businessID, err := ToInt64ID(d.BusinessID)
	if err != nil {
		return models.Transaction{}, err
	}
	txnID, err := ToInt64ID(d.TransactionID)
	if err != nil {
		return models.Transaction{}, err
	}
	return models.Transaction{
		BusinessID:    businessID,
		TransactionID: txnID,
		Amount:        ToDecimal(d.Amount),
		Category:      d.Category,
		Description:   d.Description,
		Kind:          models.TransactionKind(d.Kind),
		CreatedAt:     d.Timestamp,
	}, nil
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	amount, err := ToUint64(m.Amount)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("transaction %d/%d: %w", m.BusinessID, m.TransactionID, err)
	}
	return domain.Transaction{
		TransactionID: uint64(m.TransactionID),
		BusinessID:    uint64(m.BusinessID),
		Amount:        amount,
		Category:      m.Category,
		Description:   m.Description,
		Kind:          domain.TransactionKind(m.Kind),
		Timestamp:     m.CreatedAt.UTC(),
	}, nil
}

// ToModelFinancialState converts the derived state of a business for storage
func ToModelFinancialState(businessID uint64, d domain.FinancialState) (models.FinancialState, error) {
	id, err := ToInt64ID(businessID)
	if err != nil {
		return models.FinancialState{}, err
	}
	return models.FinancialState{
		BusinessID:    id,
		TotalSales:    ToDecimal(d.TotalSales),
		TotalExpenses: ToDecimal(d.TotalExpenses),
		Balance:       ToDecimal(d.Balance),
	}, nil
}

// ToDomainFinancialState converts a stored state back
func ToDomainFinancialState(m models.FinancialState) (domain.FinancialState, error) {
	var (
		d   domain.FinancialState
		err error
	)
	if d.TotalSales, err = ToUint64(m.TotalSales); err != nil {
		return d, fmt.Errorf("business %d total sales: %w", m.BusinessID, err)
	}
	if d.TotalExpenses, err = ToUint64(m.TotalExpenses); err != nil {
		return d, fmt.Errorf("business %d total expenses: %w", m.BusinessID, err)
	}
	if d.Balance, err = ToUint64(m.Balance); err != nil {
		return d, fmt.Errorf("business %d balance: %w", m.BusinessID, err)
	}
	return d, nil
}

// ToModelProject converts a domain Project to a model Project
func ToModelProject(d domain.Project) (models.Project, error) {
	businessID, err := ToInt64ID(d.BusinessID)
	if err != nil {
		return models.Project{}, err
	}
	projectID, err := ToInt64ID(d.ProjectID)
	if err != nil {
		return models.Project{}, err
	}
	return models.Project{
		BusinessID:  businessID,
		ProjectID:   projectID,
		ClientName:  d.ClientName,
		ProjectName: d.ProjectName,
		Amount:      ToDecimal(d.Amount),
		Deadline:    d.Deadline,
		Status:      models.ProjectStatus(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainProject converts a model Project to a domain Project
func ToDomainProject(m models.Project) (domain.Project, error) {
	amount, err := ToUint64(m.Amount)
	if err != nil {
		return domain.Project{}, fmt.Errorf("project %d/%d: %w", m.BusinessID, m.ProjectID, err)
	}
	return domain.Project{
		ProjectID:   uint64(m.ProjectID),
		BusinessID:  uint64(m.BusinessID),
		ClientName:  m.ClientName,
		ProjectName: m.ProjectName,
		Amount:      amount,
		Deadline:    m.Deadline.UTC(),
		Status:      domain.ProjectStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}, nil
}
