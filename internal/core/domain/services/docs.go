// Package services provides domain services that implement business logic
// spanning more than one aggregate in the courier marketplace.
//
// The package includes:
//   - FeeSchedule: monetary computation — price negotiation resolution,
//     commission/fee quoting, and payment net amounts
//   - Advisor: a stateless summarizer turning operational counts into
//     prioritized advisories for the operations team
//
// Domain services coordinate between aggregates, implementing business logic
// that does not naturally belong to a single aggregate root.
package services
