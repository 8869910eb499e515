package database

// migrations is an ordered list of SQL migration groups. Each entry is a slice
// of SQL statements that are executed together in a single transaction. The
// version number is the 1-based index into this slice.
var migrations = [][]string{
	// Migration 1: catalog tables
	{
		`CREATE TABLE properties (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL DEFAULT '',
			transaction_type TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT '',
			price REAL NOT NULL DEFAULT 0,
			currency TEXT NOT NULL DEFAULT '',
			price_per_sqft REAL NOT NULL DEFAULT 0,
			bedrooms INTEGER NOT NULL DEFAULT 0,
			bathrooms INTEGER NOT NULL DEFAULT 0,
			area REAL NOT NULL DEFAULT 0,
			area_unit TEXT NOT NULL DEFAULT '',
			parking INTEGER NOT NULL DEFAULT 0,
			service_charge REAL NOT NULL DEFAULT 0,
			roi REAL NOT NULL DEFAULT 0,
			rental_yield REAL NOT NULL DEFAULT 0,
			appreciation REAL NOT NULL DEFAULT 0,
			location TEXT NOT NULL DEFAULT '',
			community TEXT NOT NULL DEFAULT '',
			building TEXT NOT NULL DEFAULT '',
			developer TEXT NOT NULL DEFAULT '',
			project_name TEXT NOT NULL DEFAULT '',
			agent TEXT NOT NULL DEFAULT '',
			payment_plan TEXT NOT NULL DEFAULT '',
			dld_number TEXT NOT NULL DEFAULT '',
			rera_number TEXT NOT NULL DEFAULT '',
			furnished BOOLEAN NOT NULL DEFAULT FALSE,
			luxury BOOLEAN NOT NULL DEFAULT FALSE,
			beachfront BOOLEAN NOT NULL DEFAULT FALSE,
			waterfront BOOLEAN NOT NULL DEFAULT FALSE,
			golf_course BOOLEAN NOT NULL DEFAULT FALSE,
			balcony BOOLEAN NOT NULL DEFAULT FALSE,
			maid_room BOOLEAN NOT NULL DEFAULT FALSE,
			study_room BOOLEAN NOT NULL DEFAULT FALSE,
			laundry_room BOOLEAN NOT NULL DEFAULT FALSE,
			features TEXT NOT NULL DEFAULT '[]',
			images TEXT NOT NULL DEFAULT '[]',
			amenities TEXT NOT NULL DEFAULT '[]',
			listed_date TEXT,
			last_updated TEXT,
			completion_date TEXT NOT NULL DEFAULT '',
			handover_date TEXT NOT NULL DEFAULT '',
			views INTEGER NOT NULL DEFAULT 0,
			inquiries INTEGER NOT NULL DEFAULT 0,
			position INTEGER NOT NULL
		)`,

		`CREATE TABLE locations (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			doc TEXT NOT NULL,
			position INTEGER NOT NULL
		)`,

		`CREATE TABLE developers (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			doc TEXT NOT NULL,
			position INTEGER NOT NULL
		)`,

		`CREATE TABLE agents (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			doc TEXT NOT NULL,
			position INTEGER NOT NULL
		)`,
	},

	// Migration 2: lookup indexes
	{
		`CREATE INDEX idx_properties_position ON properties(position)`,
		`CREATE INDEX idx_properties_location ON properties(location, type)`,
		`CREATE INDEX idx_properties_developer ON properties(developer)`,
		`CREATE INDEX idx_locations_name ON locations(name)`,
	},
}
