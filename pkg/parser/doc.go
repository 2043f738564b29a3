// Package parser provides the participle-based lexers sqlshell uses to make
// sense of what the user types.
//
// No SQL grammar is implemented; statements are passed to the database as
// typed. The package only needs to know enough to answer three questions:
//
//   - Is the text typed so far a complete statement? A statement is complete
//     when its last significant token is the ";" delimiter and no string,
//     quoted identifier or block comment is left open. A ";" inside a literal
//     or a comment does not count.
//   - Where does one statement end and the next begin? Split cuts a buffer on
//     its top-level delimiters.
//   - What are the name and arguments of a meta-command? ParseMeta tokenizes
//     a ".command arg 'quoted arg'" line.
//
// Basic usage:
//
//	var acc parser.Accumulator
//	for _, line := range []string{"select *", "  from users", " where id = 1;"} {
//		if acc.Add(line) {
//			fmt.Println(acc.String()) // select * from users where id = 1;
//			for _, stmt := range parser.Split(acc.String()) {
//				run(stmt)
//			}
//			acc.Reset()
//		}
//	}
//
//	cmd, err := parser.ParseMeta(`.tables '^user_\d+'`)
//	// cmd.Name == ".tables", cmd.Args == []string{`^user_\d+`}
package parser
