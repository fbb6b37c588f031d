package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Works table: one row per cleaned work
CREATE TABLE IF NOT EXISTS works (
    work_id TEXT PRIMARY KEY,
    num_pages INTEGER NOT NULL DEFAULT 0,
    language TEXT,                -- dominant language, ISO 639-1, when detected
    cleaned_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Pages table: cleaned text plus the pre-correction intermediate
CREATE TABLE IF NOT EXISTS pages (
    page_id TEXT PRIMARY KEY,
    work_id TEXT NOT NULL,
    page_num INTEGER,
    page_text TEXT NOT NULL,
    page_text_orig TEXT,
    page_tokens TEXT,             -- JSON array of derived tokens
    num_tokens INTEGER NOT NULL DEFAULT 0,
    num_corrections INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (work_id) REFERENCES works(work_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_pages_work ON pages(work_id);

-- Corrections table: full provenance, one row per (page, stage, pair)
CREATE TABLE IF NOT EXISTS corrections (
    correction_id INTEGER PRIMARY KEY AUTOINCREMENT,
    page_id TEXT NOT NULL,
    stage TEXT NOT NULL,          -- headers, linebreaks, long_s, ocr, f_s
    original TEXT NOT NULL,
    corrected TEXT NOT NULL,
    FOREIGN KEY (page_id) REFERENCES pages(page_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_corrections_page ON corrections(page_id);
CREATE INDEX IF NOT EXISTS idx_corrections_stage ON corrections(stage);
CREATE INDEX IF NOT EXISTS idx_corrections_pair ON corrections(original, corrected);
`
