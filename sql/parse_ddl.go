package sql

import (
	"errors"
	"strings"
)

func parseDrop(q string) (Statement, error) {
	fields := strings.Fields(q)
	if len(fields) != 3 || !strings.EqualFold(fields[1], "TABLE") {
		return nil, errors.New("DROP: expected DROP TABLE <name>")
	}
	return DropTableStatement{Table: fields[2]}, nil
}

func parseShow(q string) (Statement, error) {
	fields := strings.Fields(q)
	if len(fields) != 2 || !strings.EqualFold(fields[1], "TABLES") {
		return nil, errors.New("SHOW: expected SHOW TABLES")
	}
	return ShowTablesStatement{}, nil
}

func parseDescribe(q string) (Statement, error) {
	fields := strings.Fields(q)
	if len(fields) != 2 {
		return nil, errors.New("DESCRIBE: expected DESCRIBE <name>")
	}
	return DescribeStatement{Table: fields[1]}, nil
}
