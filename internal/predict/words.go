package predict

// commonWords is the built-in completion list, most useful first.
var commonWords = []string{
	"བཀྲ་ཤིས་", "བདེ་ལེགས་", "ཐུགས་རྗེ་ཆེ་", "དགོངས་དག་", "ག་རེ་",
	"ཡིན་ན་", "འདི་", "དེ་", "ང་", "ཁྱེད་རང་", "བོད་", "ཡིག་", "སྐད་",
	"རིག་", "གནས་", "སློབ་", "སྦྱོང་", "ཆོས་", "སྲིད་", "དཔལ་",
	"འབྱོར་", "འཛམ་", "གླིང་", "རྒྱལ་", "ཁབ་", "མི་", "དམངས་", "རང་",
	"དབང་", "ཞི་", "བདེ་", "ཤེས་", "རབ་", "བྱམས་", "བརྩེ་", "སྙིང་",
	"རྗེ་", "བྱང་", "ཆུབ་", "སེམས་", "དཔའ་", "རིན་", "པོ་", "ཆེ་",
	"ལོ་", "རྒྱུས་", "དེང་", "རབས་", "ལག་", "རྩལ་", "ཚན་", "རིག་",
	"དཔྱད་", "གཞི་", "ལམ་", "སྟོན་", "རོགས་", "པ་", "བསམ་", "བློ་",
	"དམིགས་", "ཡུལ་", "གལ་", "ཆེན་", "གསར་", "པ་", "སྙན་", "ངག་", "ལྷ་",
	"ས་", "གངས་", "རི་", "མཚོ་", "སྔོན་", "དབུས་", "གཙང་", "ཁམས་", "ཨ་",
	"མདོ་", "བོད་", "རང་", "སྐྱོང་", "ལྗོངས་",
}
