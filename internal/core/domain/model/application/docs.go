// Package application contains the Application aggregate: a prospective
// driver's submission moving through the admin review lifecycle
// (pending, under_review, approved, rejected, on_hold).
//
// Approval is the one review outcome with side effects beyond the aggregate:
// it creates a Driver profile and promotes the applicant's role. The status
// machine therefore forbids approving an already-approved application, so
// the compound side effect can fire at most once.
package application
