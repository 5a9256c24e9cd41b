package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Projects: one row per declared project scope
CREATE TABLE IF NOT EXISTS projects (
    project_id TEXT PRIMARY KEY,
    description TEXT NOT NULL,
    domain TEXT NOT NULL,
    base_keywords TEXT NOT NULL,      -- JSON array of extracted keywords
    expanded_keywords TEXT NOT NULL,  -- JSON array after domain expansion
    threshold REAL NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_projects_created ON projects(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_projects_domain ON projects(domain);

-- Analyses: one row per analyzed requirement
CREATE TABLE IF NOT EXISTS analyses (
    analysis_id INTEGER PRIMARY KEY AUTOINCREMENT,
    project_id TEXT NOT NULL,
    requirement TEXT NOT NULL,

    -- Scope decision
    in_scope BOOLEAN NOT NULL,
    scope_confidence REAL NOT NULL,
    similarity REAL NOT NULL,
    keyword_overlap REAL NOT NULL,
    reason TEXT,

    -- Classification
    type TEXT NOT NULL,              -- FR, NFR, UNKNOWN, ERROR, NOT_APPLICABLE
    type_confidence REAL NOT NULL,
    sub_category TEXT,
    message TEXT,

    status TEXT NOT NULL,            -- ANALYZED, OUT_OF_SCOPE
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (project_id) REFERENCES projects(project_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_analyses_project ON analyses(project_id);
CREATE INDEX IF NOT EXISTS idx_analyses_type ON analyses(type);
CREATE INDEX IF NOT EXISTS idx_analyses_in_scope ON analyses(in_scope);
CREATE INDEX IF NOT EXISTS idx_analyses_created ON analyses(created_at);
`
