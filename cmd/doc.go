// Package cmd contains the command-line utilities of mutcompare. compare_mutations partitions the mutation mentions
// of tmVar3 and BioNExt into true positives, false positives, and false negatives; the other utilities obtain the
// inputs to that comparison. run_ner downloads PubTator3 exports or runs BioNExt, get_data downloads Open Access
// packages, extract_xls pulls the supplementary spreadsheets out of those packages, and extract_mutations reads
// mutation annotations from BioC documents.
package cmd
