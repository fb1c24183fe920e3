package gormstore

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"catalog/domain/shared"
	"catalog/infrastructure/persistence"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// Scope GORM 查询片段
type Scope = func(*gorm.DB) *gorm.DB

// base 所有仓储共用的 db 获取逻辑
type base struct {
	db *gorm.DB
}

// getDB returns the transaction from context if available, otherwise the default db
func (b base) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return b.db.WithContext(ctx)
}

// inTx 已在工作单元事务内时直接使用；否则自己开一个事务，保证主表与关联表一起写入
func (b base) inTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return fn(tx)
	}
	return b.db.WithContext(ctx).Transaction(fn)
}

// ============================================================================
// 过滤
// ============================================================================

// likeEscape 使用 '!' 作为转义符：MySQL 与 Postgres 对字符串字面量中的反斜杠处理不一致
const likeEscape = "!"

func escapeLike(term string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return r.Replace(term)
}

// containsFold 大小写不敏感的子串匹配，与内存实现的 shared.ContainsFold 一致：
// 只折叠 ASCII 字母，其余字符按字节比较
func containsFold(column, term string) Scope {
	pattern := "%" + escapeLike(shared.FoldASCII(term)) + "%"
	return func(db *gorm.DB) *gorm.DB {
		expr := foldASCIIColumn(db.Dialector.Name(), column)
		return db.Where(fmt.Sprintf("%s LIKE ? ESCAPE '%s'", expr, likeEscape), pattern)
	}
}

const (
	upperASCII = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerASCII = "abcdefghijklmnopqrstuvwxyz"
)

// foldASCIIColumn 各方言的 LOWER 都会做 Unicode 映射（sqlite 除外），这里只替换 A-Z
//   - MySQL: 逐字母 REPLACE（大小写敏感），再用 utf8mb4_bin 让 LIKE 按字节比较、区分重音
//   - Postgres: TRANSLATE；LIKE 在确定性排序规则下本身按字节匹配
//   - SQLite: 内置 lower() 只处理 ASCII
func foldASCIIColumn(dialect, column string) string {
	switch dialect {
	case DriverMySQL:
		expr := column
		for i := range len(upperASCII) {
			expr = fmt.Sprintf("REPLACE(%s, '%c', '%c')", expr, upperASCII[i], lowerASCII[i])
		}
		return expr + " COLLATE utf8mb4_bin"
	case DriverPostgres:
		return fmt.Sprintf("TRANSLATE(%s, '%s', '%s')", column, upperASCII, lowerASCII)
	default:
		return "LOWER(" + column + ")"
	}
}

// relatedTo 关联表中至少有一行命中：owner.id IN (SELECT owner_col FROM join WHERE related_col IN ?)
func relatedTo(model any, ownerColumn, relatedColumn string, ids []string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		sub := db.Session(&gorm.Session{NewDB: true}).
			Model(model).
			Select(ownerColumn).
			Where(relatedColumn+" IN ?", ids)
		return db.Where("id IN (?)", sub)
	}
}

func idStrings[ID shared.Identifier](ids []ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// ============================================================================
// 排序
// ============================================================================

// orderClause 字段不在白名单内时按 created_at 倒序（忽略 sort_dir）
// 文本列按字节序比较，与内存实现的 strings.Compare 一致
func orderClause(db *gorm.DB, sortable map[string]string, textColumns []string, sort string, dir shared.SortDirection) string {
	column, ok := sortable[sort]
	if sort == "" || !ok {
		return "created_at DESC"
	}
	expr := column
	if slices.Contains(textColumns, column) {
		expr = binaryCollation(db.Dialector.Name(), column)
	}
	if dir == shared.SortDesc {
		return expr + " DESC"
	}
	return expr + " ASC"
}

func binaryCollation(dialect, column string) string {
	switch dialect {
	case DriverMySQL:
		return "CAST(" + column + " AS BINARY)"
	case DriverPostgres:
		return column + ` COLLATE "C"`
	default:
		// sqlite 默认 BINARY collation
		return column
	}
}

// ============================================================================
// 搜索：count + fetch
// ============================================================================

type searchQuery struct {
	model   any
	scopes  []Scope
	order   string
	offset  int
	limit   int
	metrics string
}

// search 先按过滤条件计数，再取当前页；dest 为 PO 切片指针
func search(ctx context.Context, db func(ctx context.Context) *gorm.DB, q searchQuery, dest any) (int, error) {
	start := time.Now()
	defer func() {
		searchDuration.WithLabelValues(q.metrics).Observe(time.Since(start).Seconds())
	}()

	var total int64
	if err := db(ctx).Model(q.model).Scopes(q.scopes...).Count(&total).Error; err != nil {
		return 0, err
	}
	err := db(ctx).Model(q.model).
		Scopes(q.scopes...).
		Order(q.order).
		Offset(q.offset).
		Limit(q.limit).
		Find(dest).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

// existingIDs 返回 ids 中在表里存在的那部分（数据库返回顺序）
func existingIDs(db *gorm.DB, model any, ids []string) ([]string, error) {
	var found []string
	if err := db.Model(model).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// splitExists 按数据库返回顺序组装 exists，not_exists 保持输入顺序
func splitExists[ID shared.Identifier](ids []ID, found []string) shared.ExistsResult[ID] {
	byKey := make(map[string]ID, len(ids))
	for _, id := range ids {
		byKey[id.String()] = id
	}
	result := shared.ExistsResult[ID]{Exists: make([]ID, 0, len(found)), NotExists: make([]ID, 0)}
	foundSet := make(map[string]struct{}, len(found))
	for _, key := range found {
		if _, dup := foundSet[key]; dup {
			continue
		}
		foundSet[key] = struct{}{}
		if id, ok := byKey[key]; ok {
			result.Exists = append(result.Exists, id)
		}
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		key := id.String()
		if _, ok := foundSet[key]; ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result.NotExists = append(result.NotExists, id)
	}
	return result
}

// ============================================================================
// 错误
// ============================================================================

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysqldriver.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "Duplicate entry") ||
		strings.Contains(errStr, "UNIQUE constraint failed")
}

// translateWriteError 重复主键转换为 ConflictError，其他错误原样返回
func translateWriteError(err error, entityName, id string) error {
	if isDuplicateKeyError(err) {
		return shared.NewConflictError(entityName, id, err)
	}
	return err
}

// ensureRowExists Updates 影响 0 行时区分"不存在"与"值未变化"（MySQL 对未变化的行返回 0）
func ensureRowExists(tx *gorm.DB, result *gorm.DB, model any, entityName, id string) error {
	if result.RowsAffected > 0 {
		return nil
	}
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return shared.NewNotFoundError(entityName, id)
	}
	return nil
}

// ============================================================================
// 关联表
// ============================================================================

type relationRow struct {
	OwnerID   string
	RelatedID string
}

// loadRelations 批量读取关联 id，按 position 保持集合的插入顺序
func loadRelations(db *gorm.DB, model any, ownerColumn, relatedColumn string, ownerIDs []string) (map[string][]string, error) {
	out := make(map[string][]string, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return out, nil
	}
	var rows []relationRow
	err := db.Model(model).
		Select(ownerColumn+" AS owner_id, "+relatedColumn+" AS related_id").
		Where(ownerColumn+" IN ?", ownerIDs).
		Order(ownerColumn + ", position").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.OwnerID] = append(out[row.OwnerID], row.RelatedID)
	}
	return out, nil
}

// replaceRelations 先删后插，rows 为空时只删除
func replaceRelations[T any](tx *gorm.DB, model any, ownerColumn, ownerID string, rows []T) error {
	if err := tx.Where(ownerColumn+" = ?", ownerID).Delete(model).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}
