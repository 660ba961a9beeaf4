package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Коды ошибок PostgreSQL
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// Имена ограничений, которые транслируются в доменные ошибки
const (
	constraintContributionUser = "contributions_user_id_fkey"
	constraintContributionBox  = "contributions_box_id_fkey"
	constraintUserPokeballs    = "users_pokeballs_check"
)

// pgErrorCode возвращает код ошибки PostgreSQL и имя ограничения
func pgErrorCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

func isUniqueViolation(err error) bool {
	code, _ := pgErrorCode(err)
	return code == pgUniqueViolation
}
