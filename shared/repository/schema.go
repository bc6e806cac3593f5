package repository

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// joiner is implemented by row types that read across tables.
type joiner interface {
	GetJoinQuery() string
}

type column struct {
	name  string
	table string
	alias string
}

func (c column) selectExpr() string {
	if c.alias != "" {
		return fmt.Sprintf("%s.%s AS %s", c.table, c.name, c.alias)
	}

	return fmt.Sprintf("%s.%s", c.table, c.name)
}

// schema is the SQL shape of a row type, read once from its struct tags:
//
//	db:"name"       column (and scan target)
//	table:"alias"   column lives on a joined table, never inserted
//	column:"name"   real column name when db holds an alias
//	insert:"-"      generated by the store
type schema struct {
	table   string
	primary string
	join    string
	columns []column
	insert  []string
}

func schemaOf[T any](table, primary string) schema {
	var zero T

	s := schema{table: table, primary: primary}
	s.columns, s.insert = columnsOf(table, reflect.TypeOf(zero))

	if j, ok := any(zero).(joiner); ok {
		s.join = j.GetJoinQuery()
	}

	return s
}

func columnsOf(table string, rt reflect.Type) (columns []column, insert []string) {
	for i := range rt.NumField() {
		field := rt.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded, embeddedInsert := columnsOf(table, field.Type)
			columns = append(columns, embedded...)
			insert = append(insert, embeddedInsert...)

			continue
		}

		name := field.Tag.Get("db")
		if name == "" || name == "-" {
			continue
		}

		owner := field.Tag.Get("table")
		if owner == "" {
			owner = table

			if field.Tag.Get("insert") != "-" {
				insert = append(insert, name)
			}
		}

		if source := field.Tag.Get("column"); source != "" {
			columns = append(columns, column{name: source, table: owner, alias: name})

			continue
		}

		columns = append(columns, column{name: name, table: owner})
	}

	return columns, insert
}

// selectList renders the projection. only narrows it to the named scan targets.
func (s schema) selectList(only ...string) string {
	exprs := make([]string, 0, len(s.columns))

	for _, col := range s.columns {
		target := col.name
		if col.alias != "" {
			target = col.alias
		}

		if len(only) > 0 && !slices.Contains(only, target) {
			continue
		}

		exprs = append(exprs, col.selectExpr())
	}

	return strings.Join(exprs, ", ")
}

func (s schema) insertStatement() string {
	binds := make([]string, len(s.insert))
	for i, name := range s.insert {
		binds[i] = ":" + name
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", s.table, strings.Join(s.insert, ", "), strings.Join(binds, ", "))
}

func (s schema) from() string {
	if s.join == "" {
		return s.table
	}

	return s.table + " " + s.join
}
