// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package handler

import (
	"github.com/feedbackhq/account-search-service/internal/domain/model"
	"github.com/feedbackhq/account-search-service/pkg/api"
)

// toAPIAccount converts a domain account to its wire representation.
func toAPIAccount(account model.Account) api.Account {
	return api.Account{
		ID:                         account.ID,
		Name:                       account.Name,
		Type:                       account.Type,
		Region:                     account.Region,
		AnnualRecurringRevenue:     account.AnnualRecurringRevenue,
		IsActiveEnterpriseCustomer: account.IsActiveEnterpriseCustomer,
		UpdatedAt:                  account.UpdatedAt,
		AccountLink:                account.AccountLink,
		Website:                    account.Website,
	}
}

// toAPIAccounts converts a slice of domain accounts, never returning nil
// so the envelope always carries a JSON array.
func toAPIAccounts(accounts []model.Account) []api.Account {
	out := make([]api.Account, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, toAPIAccount(account))
	}
	return out
}

// toAPIOpportunity converts a domain opportunity to its wire representation.
func toAPIOpportunity(opportunity model.Opportunity) api.Opportunity {
	return api.Opportunity{
		ID:                 opportunity.ID,
		Name:               opportunity.Name,
		NewAndExpansionARR: opportunity.NewAndExpansionARR,
		Stage:              opportunity.Stage,
		CloseOn:            api.NewDate(opportunity.CloseOn),
	}
}

// toAPIOpportunities converts a slice of domain opportunities, never
// returning nil.
func toAPIOpportunities(opportunities []model.Opportunity) []api.Opportunity {
	out := make([]api.Opportunity, 0, len(opportunities))
	for _, opportunity := range opportunities {
		out = append(out, toAPIOpportunity(opportunity))
	}
	return out
}
