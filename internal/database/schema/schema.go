package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Fight catalog

CREATE TABLE IF NOT EXISTS fights (
    fight_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    event_name VARCHAR(200) NOT NULL,
    scheduled_at TIMESTAMPTZ NOT NULL,
    fighter1 VARCHAR(100) NOT NULL,
    fighter2 VARCHAR(100) NOT NULL,
    fighter1_odds INTEGER,
    fighter2_odds INTEGER,
    status VARCHAR(20) NOT NULL DEFAULT 'upcoming',
    winner VARCHAR(100),
    finish_type VARCHAR(20),
    method VARCHAR(20),
    round INTEGER,
    fight_time VARCHAR(10),
    resolved_at TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_fights_status ON fights (status, scheduled_at);

-- Predictions: at most one pick per (user, fight)

CREATE TABLE IF NOT EXISTS predictions (
    prediction_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL,
    fight_id UUID NOT NULL REFERENCES fights(fight_id) ON DELETE CASCADE,
    picked_winner VARCHAR(100) NOT NULL,
    picked_finish_type VARCHAR(20),
    picked_method VARCHAR(20),
    odds_at_prediction INTEGER,
    is_locked BOOLEAN NOT NULL DEFAULT FALSE,
    status VARCHAR(20) NOT NULL DEFAULT 'pending',
    winner_points INTEGER NOT NULL DEFAULT 0,
    finish_type_points INTEGER NOT NULL DEFAULT 0,
    method_points INTEGER NOT NULL DEFAULT 0,
    bonus_points INTEGER NOT NULL DEFAULT 0,
    total_points INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (user_id, fight_id)
);

CREATE INDEX IF NOT EXISTS idx_predictions_fight ON predictions (fight_id);
CREATE INDEX IF NOT EXISTS idx_predictions_user ON predictions (user_id, created_at DESC);

-- User aggregates, derivable in sum from the credibility log

CREATE TABLE IF NOT EXISTS user_profiles (
    user_id UUID PRIMARY KEY,
    username VARCHAR(50) NOT NULL,
    credibility_score INTEGER NOT NULL DEFAULT 0,
    tier VARCHAR(20) NOT NULL DEFAULT 'prospect',
    total_picks INTEGER NOT NULL DEFAULT 0,
    correct_picks INTEGER NOT NULL DEFAULT 0,
    total_finish_picks INTEGER NOT NULL DEFAULT 0,
    correct_finish_picks INTEGER NOT NULL DEFAULT 0,
    total_method_picks INTEGER NOT NULL DEFAULT 0,
    correct_method_picks INTEGER NOT NULL DEFAULT 0,
    total_underdog_picks INTEGER NOT NULL DEFAULT 0,
    correct_underdog_picks INTEGER NOT NULL DEFAULT 0,
    current_streak INTEGER NOT NULL DEFAULT 0,
    best_streak INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_profiles_score ON user_profiles (credibility_score DESC);

-- Per-fighter pick accuracy

CREATE TABLE IF NOT EXISTS user_fighter_stats (
    user_id UUID NOT NULL,
    fighter_name VARCHAR(100) NOT NULL,
    picks INTEGER NOT NULL DEFAULT 0,
    correct_picks INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (user_id, fighter_name)
);

-- Append-only scoring audit log

CREATE TABLE IF NOT EXISTS credibility_log (
    entry_id BIGSERIAL PRIMARY KEY,
    user_id UUID NOT NULL,
    fight_id UUID NOT NULL,
    prediction_id UUID NOT NULL,
    status VARCHAR(20) NOT NULL,
    winner_points INTEGER NOT NULL,
    finish_type_points INTEGER NOT NULL,
    method_points INTEGER NOT NULL,
    bonus_points INTEGER NOT NULL,
    total_points INTEGER NOT NULL,
    multiplier DOUBLE PRECISION NOT NULL,
    implied_probability_pct DOUBLE PRECISION NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_credlog_user ON credibility_log (user_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_credlog_fight ON credibility_log (fight_id);
`
