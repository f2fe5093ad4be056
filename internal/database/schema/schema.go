package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Recipes Catalog

CREATE TABLE IF NOT EXISTS recipes (
    recipe_id UUID PRIMARY KEY,
    recipe_name VARCHAR(200) NOT NULL,
    category VARCHAR(50) NOT NULL DEFAULT '',
    prep_time_minutes INTEGER NOT NULL DEFAULT 0,
    image_url TEXT NOT NULL DEFAULT '',
    tags JSONB NOT NULL DEFAULT '[]'::jsonb,
    is_favorite BOOLEAN NOT NULL DEFAULT FALSE,
    ingredients JSONB NOT NULL DEFAULT '[]'::jsonb,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_recipes_name ON recipes (recipe_name);

-- Week Plans
-- One row per calendar week; days holds the fixed 7-entry assignment
-- array (date, day_of_week, recipe_id) with index 0 = Monday.

CREATE TABLE IF NOT EXISTS week_plans (
    plan_id UUID PRIMARY KEY,
    week_start DATE UNIQUE NOT NULL,
    days JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_week_plans_week_start ON week_plans (week_start);
`
