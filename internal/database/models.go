package database

import "time"

type Account struct {
	Id           int
	FullName     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Repository struct {
	Id         int
	ExternalId string
	Name       string
	Url        string
	OwnerId    int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Document struct {
	Id          int
	ExternalId  string
	Filename    string
	ContentType string
	SizeBytes   int64
	OwnerId     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateAccountParams struct {
	FullName     string
	Email        string
	PasswordHash string
	Role         string
}

type UpdateAccountParams struct {
	AccountId    int
	FullName     string
	PasswordHash string
}

type CreateRepositoryParams struct {
	ExternalId string
	Name       string
	Url        string
	OwnerId    int
}

type CreateDocumentParams struct {
	ExternalId  string
	Filename    string
	ContentType string
	SizeBytes   int64
	OwnerId     int
}
