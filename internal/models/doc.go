// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

/*
Package models defines the data structures shared by the store, the
valuation engine and the HTTP API.

  - wine.go: the stored wine document (WineRecord) and its sub-documents,
    with the JSON field names of the source data (_id, vestimated_price,
    global_market_price, ...)
  - critic.go: the critic consensus section of a valuation
  - valuation.go: the Valuation response and its price types
  - reference.go: currency and country reference rows
  - api_responses.go: the HTTP envelope, request bodies and query structs

Validation rules are expressed as go-playground/validator tags and run by
package validation. The custom tags currency, country and wine_language are
registered there.
*/
package models
