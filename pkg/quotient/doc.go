// Package quotient provides types, interfaces, and helpers for working with
// the Quotient quoting and order-management API.
//
// # Overview
//
// The quotient package defines the domain types (e.g., Quote, Order,
// Component, IntegrationAction) and the interfaces for resource-oriented
// clients (e.g., QuotesClient, OrdersClient). A concrete implementation of
// these clients is provided by the qclient package, which wires
// configuration, transport, and authentication. Most consumers should import
// qclient to construct a client and then interact with the resource client
// interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/quotient-io/quotient-client/pkg/qclient"
//	  "github.com/quotient-io/quotient-client/pkg/quotient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := qclient.New(&quotient.Config{
//	    APIEndpoint: "https://api.quotient.example.com",
//	    AccessToken: "token",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  order, err := cli.Orders().Get(ctx, 72)
//	  if err != nil { log.Fatal(err) }
//	  _ = order
//	}
//
// # Partial updates
//
// Optional fields on mutable resources use the tri-state Optional type.
// A field left in its zero ("unset") state is omitted entirely from the
// serialized request body, an explicit Null is sent as JSON null, and a Set
// value is sent as-is. This is how partial updates are expressed: only
// fields the caller touched travel on the wire.
//
// # Mutation reconciliation
//
// Create and Update methods take a pointer to the resource and rewrite it in
// place from the server's response, so callers holding the same pointer see
// the server-assigned fields (ids, computed prices, timestamps) without
// rebinding.
package quotient
