// Package domain defines the value types of the vehicle configurator:
// the wizard step chain, the configuration state aggregate, pricing and
// validation payloads, catalog entities, and dealer orders.
//
// Everything here is plain data. Mutation rules live in the reducer, and
// persistence lives behind the ports interfaces, so this package stays
// dependency-free and safe to import from anywhere.
package domain
