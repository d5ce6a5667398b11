// Package driver contains the Driver aggregate: the operational profile of
// an approved courier, covering availability, position, rating, earnings,
// and the admin-driven status lifecycle (pending, approved, suspended,
// rejected).
package driver
