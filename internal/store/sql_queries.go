package store

// Static queries. Dynamic queries (paginated lists and partial updates) are
// built with squirrel in the repositories.
const (
	createUser = `INSERT INTO "user" (username, first_name, last_name, email, enabled, type, password)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, username, first_name, last_name, email, enabled, type, password, created_at, modified_at;`

	getUser = `SELECT id, username, first_name, last_name, email, enabled, type, password, created_at, modified_at
    FROM "user"
    WHERE id = $1;`

	findUserByCredentials = `SELECT id, username, first_name, last_name, email, enabled, type, password, created_at, modified_at
    FROM "user"
    WHERE username = $1 AND password = $2;`

	createProvider = `INSERT INTO provider (name, status, contributor, trail, url, note)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, name, status, contributor, trail, url, note, created_at, modified_at;`

	getProvider = `SELECT id, name, status, contributor, trail, url, note, created_at, modified_at
    FROM provider
    WHERE id = $1;`

	deleteProvider = `DELETE FROM provider WHERE id = $1;`

	createOpportunity = `INSERT INTO opportunity (name, status, contributor, trail, url, amount, amount_per, note)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING id, name, status, contributor, trail, url, amount, amount_per, note, created_at, modified_at;`

	getOpportunity = `SELECT id, name, status, contributor, trail, url, amount, amount_per, note, created_at, modified_at
    FROM opportunity
    WHERE id = $1;`

	deleteOpportunity = `DELETE FROM opportunity WHERE id = $1;`

	linkOpportunityProvider = `INSERT INTO opportunity_provider (opportunity_id, provider_id)
    VALUES ($1, $2);`

	unlinkOpportunityProvider = `DELETE FROM opportunity_provider
    WHERE opportunity_id = $1 AND provider_id = $2;`

	providersOfOpportunity = `SELECT p.id, p.name, p.status, p.contributor, p.trail, p.url, p.note, p.created_at, p.modified_at
    FROM provider p
    JOIN opportunity_provider op ON op.provider_id = p.id
    WHERE op.opportunity_id = $1
    ORDER BY p.id;`

	createAssociation = `INSERT INTO association (opportunity_id, user_id, type)
    VALUES ($1, $2, $3)
    RETURNING opportunity_id, user_id, type;`

	associationsOfOpportunity = `SELECT opportunity_id, user_id, type
    FROM association
    WHERE opportunity_id = $1
    ORDER BY user_id;`

	createSession = `INSERT INTO session (user_id, token)
    VALUES ($1, $2)
    RETURNING id, user_id, token, created_at, modified_at;`

	findSessionByToken = `SELECT id, user_id, token, created_at, modified_at
    FROM session
    WHERE token = $1;`
)
