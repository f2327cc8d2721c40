// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	CannotDecodeAccount          = InvalidError("cannot decode account")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ChecksumMismatch             = ProcessError("checksum mismatch")
	CountMismatch                = RecordError("kitty count does not match records")
	DatabaseVersion              = InvalidError("database version is newer than this program supports")
	DuplicateIdentity            = ExistsError("kitty dna already registered")
	InconsistentIndex            = RecordError("owner index does not match kitty records")
	InvalidAccount               = InvalidError("invalid account")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidDNA                   = InvalidError("invalid dna")
	InvalidGender                = InvalidError("invalid gender")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidKeyLength             = InvalidError("invalid key length")
	InvalidKeyType               = InvalidError("invalid key type")
	InvalidPoolDefinition        = InvalidError("invalid storage pool definition")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingParameters            = InvalidError("missing parameters")
	NotInitialised               = NotFoundError("not initialised")
	NotOwner                     = PermissionError("caller does not own this kitty")
	NotOwnerListPack             = RecordError("not an owner list pack")
	NotPublicKey                 = InvalidError("not a public key")
	NotRecordPack                = RecordError("not a kitty record pack")
	RateLimiting                 = ProcessError("rate limiting")
	RecordNotFound               = NotFoundError("kitty not found")
	SelfTransfer                 = InvalidError("cannot transfer a kitty to its current owner")
	TransactionInUse             = ProcessError("transaction already in use")
	WrongNetworkForAccount       = InvalidError("wrong network for account")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e RecordError) Error() string     { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool     { _, ok := e.(RecordError); return ok }
