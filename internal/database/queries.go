package database

import (
	"time"
)

func (db *PgZenithRepository) CreateAccount(params CreateAccountParams) (Account, error) {
	res := db.conn.QueryRow(
		"INSERT INTO accounts (full_name, email, password_hash, role, created_at, updated_at) "+
			"VALUES ($1, $2, $3, $4, $5, $5) RETURNING id, full_name, email, role, created_at, updated_at",
		params.FullName,
		params.Email,
		params.PasswordHash,
		params.Role,
		time.Now().UTC(),
	)

	var a Account
	err := res.Scan(
		&a.Id,
		&a.FullName,
		&a.Email,
		&a.Role,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	return a, err
}

func (db *PgZenithRepository) UpdateAccount(params UpdateAccountParams) (Account, error) {
	res := db.conn.QueryRow(
		"UPDATE accounts SET full_name = $2, password_hash = $3, updated_at = $4 "+
			"WHERE id = $1 RETURNING id, full_name, email, role, created_at, updated_at",
		params.AccountId,
		params.FullName,
		params.PasswordHash,
		time.Now().UTC(),
	)

	var a Account
	err := res.Scan(
		&a.Id,
		&a.FullName,
		&a.Email,
		&a.Role,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	return a, err
}

func (db *PgZenithRepository) GetAccountById(accountId int) (Account, error) {
	row := db.conn.QueryRow(
		"SELECT id, full_name, email, role, created_at, updated_at FROM accounts "+
			"WHERE id = $1 LIMIT 1",
		accountId,
	)

	var a Account
	err := row.Scan(
		&a.Id,
		&a.FullName,
		&a.Email,
		&a.Role,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	return a, err
}

func (db *PgZenithRepository) GetAccountByEmail(email string) (Account, error) {
	row := db.conn.QueryRow(
		"SELECT id, full_name, email, password_hash, role, created_at, updated_at FROM accounts "+
			"WHERE email = $1 LIMIT 1",
		email,
	)

	var a Account
	err := row.Scan(
		&a.Id,
		&a.FullName,
		&a.Email,
		&a.PasswordHash,
		&a.Role,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	return a, err
}

func (db *PgZenithRepository) ListRepositories(ownerId int) ([]Repository, error) {
	rows, err := db.conn.Query(
		"SELECT id, external_id, name, url, owner_id, created_at, updated_at FROM repositories "+
			"WHERE owner_id = $1 ORDER BY created_at DESC",
		ownerId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var repos []Repository
	for rows.Next() {
		var r Repository
		if err := rows.Scan(
			&r.Id,
			&r.ExternalId,
			&r.Name,
			&r.Url,
			&r.OwnerId,
			&r.CreatedAt,
			&r.UpdatedAt,
		); err != nil {
			return nil, err
		}
		repos = append(repos, r)
	}

	return repos, rows.Err()
}

func (db *PgZenithRepository) CreateRepository(params CreateRepositoryParams) (Repository, error) {
	res := db.conn.QueryRow(
		"INSERT INTO repositories (external_id, name, url, owner_id, created_at, updated_at) "+
			"VALUES ($1, $2, $3, $4, $5, $5) RETURNING id, external_id, name, url, owner_id, created_at, updated_at",
		params.ExternalId,
		params.Name,
		params.Url,
		params.OwnerId,
		time.Now().UTC(),
	)

	var r Repository
	err := res.Scan(
		&r.Id,
		&r.ExternalId,
		&r.Name,
		&r.Url,
		&r.OwnerId,
		&r.CreatedAt,
		&r.UpdatedAt,
	)

	return r, err
}

func (db *PgZenithRepository) GetRepositoryByExternalId(externalId string) (Repository, error) {
	row := db.conn.QueryRow(
		"SELECT id, external_id, name, url, owner_id, created_at, updated_at FROM repositories "+
			"WHERE external_id = $1 LIMIT 1",
		externalId,
	)

	var r Repository
	err := row.Scan(
		&r.Id,
		&r.ExternalId,
		&r.Name,
		&r.Url,
		&r.OwnerId,
		&r.CreatedAt,
		&r.UpdatedAt,
	)

	return r, err
}

func (db *PgZenithRepository) DeleteRepository(id int) error {
	_, err := db.conn.Exec("DELETE FROM repositories WHERE id = $1", id)
	return err
}

func (db *PgZenithRepository) ListDocuments(ownerId int) ([]Document, error) {
	rows, err := db.conn.Query(
		"SELECT id, external_id, filename, content_type, size_bytes, owner_id, created_at, updated_at FROM documents "+
			"WHERE owner_id = $1 ORDER BY created_at DESC",
		ownerId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(
			&d.Id,
			&d.ExternalId,
			&d.Filename,
			&d.ContentType,
			&d.SizeBytes,
			&d.OwnerId,
			&d.CreatedAt,
			&d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}

	return docs, rows.Err()
}

func (db *PgZenithRepository) CreateDocument(params CreateDocumentParams) (Document, error) {
	res := db.conn.QueryRow(
		"INSERT INTO documents (external_id, filename, content_type, size_bytes, owner_id, created_at, updated_at) "+
			"VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING id, external_id, filename, content_type, size_bytes, owner_id, created_at, updated_at",
		params.ExternalId,
		params.Filename,
		params.ContentType,
		params.SizeBytes,
		params.OwnerId,
		time.Now().UTC(),
	)

	var d Document
	err := res.Scan(
		&d.Id,
		&d.ExternalId,
		&d.Filename,
		&d.ContentType,
		&d.SizeBytes,
		&d.OwnerId,
		&d.CreatedAt,
		&d.UpdatedAt,
	)

	return d, err
}

func (db *PgZenithRepository) GetDocumentByExternalId(externalId string) (Document, error) {
	row := db.conn.QueryRow(
		"SELECT id, external_id, filename, content_type, size_bytes, owner_id, created_at, updated_at FROM documents "+
			"WHERE external_id = $1 LIMIT 1",
		externalId,
	)

	var d Document
	err := row.Scan(
		&d.Id,
		&d.ExternalId,
		&d.Filename,
		&d.ContentType,
		&d.SizeBytes,
		&d.OwnerId,
		&d.CreatedAt,
		&d.UpdatedAt,
	)

	return d, err
}

func (db *PgZenithRepository) DeleteDocument(id int) error {
	_, err := db.conn.Exec("DELETE FROM documents WHERE id = $1", id)
	return err
}
