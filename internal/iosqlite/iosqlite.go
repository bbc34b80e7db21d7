// Package iosqlite exports results of a GNmoth build to a SQLite file.
// It uses a pure Go SQLite driver, no CGo is required.
package iosqlite

import (
	"database/sql"
	"errors"
	"log/slog"
	"os"

	"github.com/gnames/gnmoth/pkg/blacklist"
	"github.com/gnames/gnmoth/pkg/moth"
	_ "modernc.org/sqlite"
)

// File is the name of the SQLite file in the output directory.
const File = "moths.sqlite"

const schema = `
CREATE TABLE species (
	taxon_id TEXT PRIMARY KEY,
	canonical_name TEXT,
	name_id TEXT,
	superfamily TEXT,
	family TEXT,
	subfamily TEXT,
	tribe TEXT,
	subtribe TEXT,
	genus TEXT NOT NULL,
	epithet TEXT NOT NULL,
	extinct INTEGER,
	freshwater INTEGER,
	marine INTEGER,
	locality TEXT,
	threat_status TEXT
);

CREATE TABLE common_names (
	taxon_id TEXT NOT NULL,
	name TEXT NOT NULL
);

CREATE TABLE synonyms (
	taxon_id TEXT NOT NULL,
	synonym_taxon_id TEXT NOT NULL,
	genus TEXT NOT NULL,
	epithet TEXT NOT NULL
);

CREATE TABLE blacklist (
	category TEXT NOT NULL,
	fragment TEXT NOT NULL,
	PRIMARY KEY (category, fragment)
);

CREATE TABLE collisions (
	category TEXT NOT NULL,
	fragment TEXT NOT NULL,
	PRIMARY KEY (category, fragment)
);

CREATE INDEX idx_common_names_taxon_id ON common_names (taxon_id);
CREATE INDEX idx_synonyms_taxon_id ON synonyms (taxon_id);
CREATE INDEX idx_species_genus_epithet ON species (genus, epithet);
`

// Export writes result to a new SQLite database at path. An existing file
// is replaced.
func Export(path string, res *moth.Result) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return SQLiteExportError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return SQLiteExportError(path, err)
	}
	defer db.Close()

	if _, err = db.Exec(schema); err != nil {
		return SQLiteExportError(path, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return SQLiteExportError(path, err)
	}
	defer tx.Rollback()

	if err = insertSpecies(tx, res.Moths); err != nil {
		return SQLiteExportError(path, err)
	}
	if err = insertFragments(tx, "blacklist", res.Blacklist); err != nil {
		return SQLiteExportError(path, err)
	}
	if err = insertFragments(tx, "collisions", res.Collisions); err != nil {
		return SQLiteExportError(path, err)
	}
	if err = tx.Commit(); err != nil {
		return SQLiteExportError(path, err)
	}

	slog.Info("SQLite export complete", "path", path, "species", len(res.Moths))
	return nil
}

func insertSpecies(tx *sql.Tx, moths []moth.Entry) error {
	spStmt, err := tx.Prepare(`
INSERT INTO species (
	taxon_id, canonical_name, name_id, superfamily, family, subfamily,
	tribe, subtribe, genus, epithet, extinct, freshwater, marine,
	locality, threat_status
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer spStmt.Close()

	cnStmt, err := tx.Prepare(
		`INSERT INTO common_names (taxon_id, name) VALUES (?, ?)`,
	)
	if err != nil {
		return err
	}
	defer cnStmt.Close()

	synStmt, err := tx.Prepare(`
INSERT INTO synonyms (taxon_id, synonym_taxon_id, genus, epithet)
VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer synStmt.Close()

	for _, v := range moths {
		var extinct, freshwater, marine sql.NullBool
		if sp := v.SpeciesProfile; sp != nil {
			extinct = nullBool(sp.Extinct)
			freshwater = nullBool(sp.Freshwater)
			marine = nullBool(sp.Marine)
		}
		var locality, threat sql.NullString
		if d := v.Distribution; d != nil {
			locality = nullString(d.Locality)
			threat = nullString(d.ThreatStatus.String())
		}
		cl := v.Classification
		_, err = spStmt.Exec(
			v.TaxonID, nullString(v.CanonicalName), nullString(v.NameID),
			nullString(cl.Superfamily), nullString(cl.Family),
			nullString(cl.Subfamily), nullString(cl.Tribe),
			nullString(cl.Subtribe), cl.Genus, cl.Epithet,
			extinct, freshwater, marine, locality, threat,
		)
		if err != nil {
			return err
		}

		for _, name := range v.CommonNames {
			if _, err = cnStmt.Exec(v.TaxonID, name); err != nil {
				return err
			}
		}

		for _, syn := range v.Synonyms {
			_, err = synStmt.Exec(v.TaxonID, syn.TaxonID, syn.Genus, syn.Epithet)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func insertFragments(tx *sql.Tx, table string, f moth.Fragments) error {
	stmt, err := tx.Prepare(
		"INSERT INTO " + table + " (category, fragment) VALUES (?, ?)",
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	data := map[blacklist.Category][]string{
		blacklist.Family:    f.Families,
		blacklist.Subfamily: f.Subfamilies,
		blacklist.Tribe:     f.Tribes,
		blacklist.Subtribe:  f.Subtribes,
		blacklist.Genus:     f.Genera,
		blacklist.Epithet:   f.Epithets,
	}
	for _, cat := range blacklist.Categories {
		for _, v := range data[cat] {
			if _, err = stmt.Exec(cat.String(), v); err != nil {
				return err
			}
		}
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}
