// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package opensearch

// queryAccountsSource renders the account lookup. With a name it is a
// prefix match restricted to rows carrying a region, website or CRM
// link; without one it is the default recently-updated listing, which
// requires a region classification. Ordering mirrors the endpoint
// contract so the index does most of the work even though the service
// layer re-sorts.
const queryAccountsSource = `{
  "size": {{ .Size }},
  "query": {
    "bool": {
      "must": [
        {
          "range": {
            "updated_at": {
              "gte": {{ .UpdatedAfter | quote }}
            }
          }
        }
        {{- if .Name }},
        {
          "match_phrase_prefix": {
            "account_name": {
              "query": {{ .Name | quote }}
            }
          }
        }
        {{- end }}
      ],
      {{- if .Name }}
      "minimum_should_match": 1,
      "should": [
        {
          "exists": {"field": "region_name"}
        },
        {
          "exists": {"field": "website"}
        },
        {
          "exists": {"field": "account_link"}
        }
      ]
      {{- else }}
      "filter": [
        {
          "exists": {"field": "region_name"}
        }
      ]
      {{- end }}
    }
  },
  "sort": [
    {
      "annual_recurring_revenue": {
        "order": "desc",
        "missing": "_last"
      }
    },
    {
      "updated_at": {
        "order": "desc"
      }
    },
    {"_id": "asc"}
  ]
}`
