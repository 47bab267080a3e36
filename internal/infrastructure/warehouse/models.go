// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package warehouse

import (
	"github.com/feedbackhq/account-search-service/internal/domain/model"
	"github.com/feedbackhq/account-search-service/pkg/api"
)

// accountsResponse is the gateway envelope for account queries. Row
// shapes reuse the wire types: the gateway serves the same warehouse
// export columns the service re-exposes.
type accountsResponse struct {
	Rows []api.Account `json:"rows"`
}

// opportunitiesResponse is the gateway envelope for opportunity queries.
type opportunitiesResponse struct {
	Rows []api.Opportunity `json:"rows"`
}

func toDomainAccount(row api.Account) model.Account {
	return model.Account{
		ID:                         row.ID,
		Name:                       row.Name,
		Type:                       row.Type,
		Region:                     row.Region,
		AnnualRecurringRevenue:     row.AnnualRecurringRevenue,
		IsActiveEnterpriseCustomer: row.IsActiveEnterpriseCustomer,
		UpdatedAt:                  row.UpdatedAt,
		AccountLink:                row.AccountLink,
		Website:                    row.Website,
	}
}

func toDomainOpportunity(row api.Opportunity) model.Opportunity {
	return model.Opportunity{
		ID:                 row.ID,
		Name:               row.Name,
		NewAndExpansionARR: row.NewAndExpansionARR,
		Stage:              row.Stage,
		CloseOn:            row.CloseOn.Time,
	}
}
