package store

const Schema = `
CREATE TABLE IF NOT EXISTS movies (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title VARCHAR(250) NOT NULL UNIQUE,
	year INTEGER NOT NULL,
	description VARCHAR(500) NOT NULL,
	rating REAL,
	ranking INTEGER,
	review VARCHAR(250),
	img_url VARCHAR(250) NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_movies_rating ON movies(rating);

CREATE TABLE IF NOT EXISTS cache (
	key TEXT PRIMARY KEY,
	data BLOB,
	expires_at DATETIME
);
`
