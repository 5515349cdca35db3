package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"copymedic/internal/fsio"
	"copymedic/internal/output"
	"copymedic/internal/rules"
)

// runUpdate performs the two passes of an update run: rewrite every file in
// place, then re-scan the tree for copyright lines the rewrite left behind.
// The second pass reads from disk, so it verifies what was actually written
// rather than what the first pass believes it wrote.
func runUpdate(root string, files []string, compiled []compiledRule, env rules.Env, ignore *rules.IgnoreList, outMgr *output.Manager) (findings, fatal bool) {
	for _, rel := range files {
		if ok := rewriteFile(root, rel, compiled, outMgr); !ok {
			return findings, true
		}
	}

	noticeRe := rules.NoticePattern(env.Holder)
	for _, rel := range files {
		anomalies, ok := scanFile(root, rel, noticeRe, env.ThisYear, ignore, outMgr)
		if !ok {
			return findings, true
		}
		if anomalies > 0 {
			findings = true
		}
	}
	return findings, false
}

// rewriteFile applies the first matching rule to each line and writes the
// file back only when something changed. Untouched files are never
// rewritten, so their bytes and timestamps stay as they were.
func rewriteFile(root, rel string, compiled []compiledRule, outMgr *output.Manager) bool {
	abs := filepath.Join(root, rel)
	lines, err := fsio.ReadLines(abs)
	if err != nil {
		reportFileError(outMgr, rel, err)
		return false
	}

	changed := false
	for i := range lines {
		before := lines[i].Text
		for _, cr := range compiled {
			after, ok := cr.rw.Rewrite(before)
			if !ok {
				continue
			}
			lines[i].Text = after
			changed = true
			_ = outMgr.Write(rules.UpdatedResult(rel, i+1, cr.id, before, after))
			break
		}
	}

	if !changed {
		return true
	}
	if err := fsio.WriteLines(abs, lines); err != nil {
		reportFileError(outMgr, rel, err)
		return false
	}
	return true
}

// scanFile classifies every copyright notice line in one file: CURRENT when
// it carries the target year, ANOMALY otherwise. Returns the anomaly count
// and whether the file could be read.
func scanFile(root, rel string, noticeRe *regexp.Regexp, thisYear int, ignore *rules.IgnoreList, outMgr *output.Manager) (int, bool) {
	lines, err := fsio.ReadLines(filepath.Join(root, rel))
	if err != nil {
		reportFileError(outMgr, rel, err)
		return 0, false
	}

	anomalies := 0
	for i, line := range lines {
		res, ok := classifyNotice(rel, i+1, line.Text, noticeRe, thisYear)
		if !ok {
			continue
		}
		if ignore.Suppresses(res) {
			continue
		}
		if res.Status == rules.StatusAnomaly {
			anomalies++
		}
		_ = outMgr.Write(res)
	}
	return anomalies, true
}

// runCheck is the read-only twin of runUpdate: a single in-memory pass per
// file reports the lines an update would rewrite, then classifies the
// notices that would remain afterwards. Nothing is written to disk.
func runCheck(root string, files []string, compiled []compiledRule, env rules.Env, ignore *rules.IgnoreList, outMgr *output.Manager) (findings, fatal bool) {
	noticeRe := rules.NoticePattern(env.Holder)

	for _, rel := range files {
		lines, err := fsio.ReadLines(filepath.Join(root, rel))
		if err != nil {
			reportFileError(outMgr, rel, err)
			return findings, true
		}

		for i, line := range lines {
			text := line.Text
			matched := ""
			for _, cr := range compiled {
				after, ok := cr.rw.Rewrite(text)
				if !ok {
					continue
				}
				_ = outMgr.Write(rules.OutdatedResult(rel, i+1, cr.id, text, after))
				text = after
				matched = cr.id
				findings = true
				break
			}

			res, ok := classifyNotice(rel, i+1, text, noticeRe, env.ThisYear)
			if !ok {
				continue
			}
			switch res.Status {
			case rules.StatusAnomaly:
				if ignore.Suppresses(res) {
					continue
				}
				findings = true
				_ = outMgr.Write(res)
			case rules.StatusCurrent:
				// An outdated line already carries its own result; that its
				// rewrite would be current adds nothing.
				if matched == "" {
					_ = outMgr.Write(res)
				}
			}
		}
	}
	return findings, false
}

func classifyNotice(file string, line int, text string, noticeRe *regexp.Regexp, thisYear int) (rules.Result, bool) {
	if !noticeRe.MatchString(text) {
		return rules.Result{}, false
	}
	if rules.IsCurrent(text, thisYear) {
		return rules.CurrentResult(file, line, text), true
	}
	return rules.AnomalyResult(file, line, text), true
}

func reportFileError(outMgr *output.Manager, rel string, err error) {
	fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", rel, err)
	_ = outMgr.Write(rules.ErrorResult(rel, err.Error()))
}
