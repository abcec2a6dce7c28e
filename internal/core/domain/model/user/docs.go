// Package user provides the User aggregate for marketplace participants.
//
// Every registered person has exactly one role: buyer, vendor, or
// intermediary. The role decides which order lifecycle operations the user
// may perform and is fixed at registration, as is the login email. Name,
// phone, and the default delivery address can change through UpdateProfile.
//
// Password hashing is not a domain concern: the aggregate stores and returns
// an opaque hash, and the application layer is responsible for producing and
// verifying it.
package user
